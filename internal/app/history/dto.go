package history

import "evoview/internal/app/ports"

type Request struct {
	Limit int
}

type Response struct {
	Runs []ports.TrainingRun
}
