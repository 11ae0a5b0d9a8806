package domain

// Classification is the binary outcome assigned to a probed URL.
type Classification string

const (
	Working    Classification = "working"
	NotWorking Classification = "not_working"
)

// ReasonFailedToLoad is the generic reason reported for every NotWorking
// result unless detailed reasons are enabled.
const ReasonFailedToLoad = "Failed to load"

// CheckResult is the outcome of probing one normalized URL.
//
// Reason is set only when Status is NotWorking. StatusCode and FailureKind
// carry what actually happened; they never change the classification.
type CheckResult struct {
	URL    string         `json:"url"`
	Status Classification `json:"status"`
	Reason string         `json:"reason,omitempty"`

	StatusCode  int         `json:"status_code,omitempty"`
	FailureKind FailureKind `json:"failure_kind,omitempty"`
	LatencyMS   int64       `json:"latency_ms"`
}

// IsWorking reports whether the result is classified as Working.
func (r CheckResult) IsWorking() bool {
	return r.Status == Working
}

// WorkingResult builds a Working result for url.
func WorkingResult(url string, statusCode int) CheckResult {
	return CheckResult{
		URL:        url,
		Status:     Working,
		StatusCode: statusCode,
	}
}

// FailedResult builds a NotWorking result with the generic reason.
func FailedResult(url string, kind FailureKind, statusCode int) CheckResult {
	return CheckResult{
		URL:         url,
		Status:      NotWorking,
		Reason:      ReasonFailedToLoad,
		StatusCode:  statusCode,
		FailureKind: kind,
	}
}

// String renders the per-item log line. A response with a non-200 status
// prints as "Not Working: URL"; a request that never got a response, or a
// detailed reason, adds " - Error: reason".
func (r CheckResult) String() string {
	if r.IsWorking() {
		return "Working: " + r.URL
	}
	if r.FailureKind == FailureHTTP && r.Reason == ReasonFailedToLoad {
		return "Not Working: " + r.URL
	}
	return "Not Working: " + r.URL + " - Error: " + r.Reason
}
