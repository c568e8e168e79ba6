package ports

type RenderMetrics interface {
	RecordFrame()
	RecordFrameFailure()
	RecordHalt()
}

type TrainingMetrics interface {
	RecordTrainSuccess()
	RecordTrainFailure()
}
