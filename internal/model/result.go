package model

// ResultKind tells how an operation ended
type ResultKind int

const (
	ResultSucceeded ResultKind = iota
	ResultFailed
	ResultCancelled
)

// String returns a label for the result kind
func (k ResultKind) String() string {
	switch k {
	case ResultSucceeded:
		return "succeeded"
	case ResultFailed:
		return "failed"
	case ResultCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// FailureKind separates input problems caught before ffmpeg runs from
// failures raised while it runs
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailurePrecondition
	FailureOperation
)

// Result is the outcome of an editing operation, independent of how it is shown
type Result struct {
	Kind       ResultKind
	Failure    FailureKind
	OutputPath string
	Reason     string
}

// Succeeded builds a success result naming the written file
func Succeeded(outputPath string) Result {
	return Result{Kind: ResultSucceeded, OutputPath: outputPath}
}

// Failed builds a failure result
func Failed(kind FailureKind, reason string) Result {
	return Result{Kind: ResultFailed, Failure: kind, Reason: reason}
}

// Cancelled builds the result of an aborted operation
func Cancelled() Result {
	return Result{Kind: ResultCancelled}
}

// IsPrecondition reports whether the operation was refused before running
func (r Result) IsPrecondition() bool {
	return r.Kind == ResultFailed && r.Failure == FailurePrecondition
}
