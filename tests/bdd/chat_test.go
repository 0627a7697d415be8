package bdd

import "github.com/cucumber/godog"

// godog run ./tests/bdd/featureFiles/console_chat.feature
// Use of godog CLI is deprecated, please use *testing.T instead.
// See https://github.com/cucumber/godog/discussions/478 for details.
// Feature: 管理台即時聊天
//   In order to reach employees directly
//   As the console owner and employees
//   I want durable two party conversations over websocket

//   Background:
//     Given owner 已登入並取得 Token "ownerToken"
//     And 員工 "alice" 已登入並取得 Token "aliceToken"

//   Scenario: 雙方加入同一對話
//     When owner 加入對話 "alice"
//     And "alice" 加入對話 "alice"
//     Then 對話 "alice" 應該有 2 個觀看者

//   Scenario: 發送與接收訊息
//     Given owner 與 "alice" 都在對話 "alice" 中
//     When owner 發送訊息 "Hello Alice!"
//     Then "alice" 應該收到訊息 "Hello Alice!"
//     And owner 應該收到訊息 "Hello Alice!"

//   Scenario: 重連後補歷史
//     Given 對話 "alice" 已有 3 則訊息
//     When "alice" 斷線後重新連線
//     Then "alice" 撈取歷史應該得到 3 則訊息

func StepDefinitioninition1(arg1 string) error {
	return godog.ErrPending
}

func StepDefinitioninition2(arg1 string, arg2 int) error {
	return godog.ErrPending
}

func StepDefinitioninition3(arg1, arg2 string) error {
	return godog.ErrPending
}

func StepDefinitioninition4(arg1, arg2 string) error {
	return godog.ErrPending
}

func ownerToken(arg1 string) error {
	return godog.ErrPending
}

func employeeToken(arg1, arg2 string) error {
	return godog.ErrPending
}

func bothInConversation(arg1, arg2 string) error {
	return godog.ErrPending
}

func historyCount(arg1 string, arg2 int) error {
	return godog.ErrPending
}

func InitializeConsoleChatScenario(ctx *godog.ScenarioContext) {
	ctx.Step(`^owner 加入對話 "([^"]*)"$`, StepDefinitioninition1)
	ctx.Step(`^對話 "([^"]*)" 應該有 (\d+) 個觀看者$`, StepDefinitioninition2)
	ctx.Step(`^"([^"]*)" 加入對話 "([^"]*)"$`, StepDefinitioninition3)
	ctx.Step(`^"([^"]*)" 應該收到訊息 "([^"]*)"$`, StepDefinitioninition4)
	ctx.Step(`^owner 已登入並取得 Token "([^"]*)"$`, ownerToken)
	ctx.Step(`^員工 "([^"]*)" 已登入並取得 Token "([^"]*)"$`, employeeToken)
	ctx.Step(`^owner 與 "([^"]*)" 都在對話 "([^"]*)" 中$`, bothInConversation)
	ctx.Step(`^"([^"]*)" 撈取歷史應該得到 (\d+) 則訊息$`, historyCount)
}
