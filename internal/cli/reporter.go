package cli

// stageReporter adapts the output helpers to the app.Reporter interface so
// the orchestration layer stays free of presentation concerns.
type stageReporter struct{}

func (stageReporter) Start(stage string) {
	printProgress(stage + "...")
}

func (stageReporter) Succeed(stage string) {
	printSuccess(stage)
}

func (stageReporter) Fail(stage string) {
	printErrorMsg(stage + " failed")
}
