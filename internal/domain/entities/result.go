package entities

// FetchStatus tags the outcome of a detail fetch.
type FetchStatus int

// Fetch outcomes. Only FetchSuccess carries details.
const (
	FetchSuccess FetchStatus = iota
	// FetchEmpty means the model answered with an empty object.
	FetchEmpty
	// FetchUnavailable means the request failed in transport or auth.
	FetchUnavailable
	// FetchParseFailed means the response could not be read as details.
	FetchParseFailed
)

// String returns the status name used in logs and lookup history.
func (s FetchStatus) String() string {
	switch s {
	case FetchSuccess:
		return "success"
	case FetchEmpty:
		return "empty"
	case FetchUnavailable:
		return "unavailable"
	case FetchParseFailed:
		return "parse_failed"
	default:
		return "unknown"
	}
}

// DetailsResult is the tagged result of one detail fetch.
type DetailsResult struct {
	Status  FetchStatus
	Details *GameDetails
	// Err describes why the fetch did not succeed. Informational only.
	Err error
}

// Found reports whether the result carries usable details.
func (r DetailsResult) Found() bool {
	return r.Status == FetchSuccess && r.Details != nil
}

// Succeeded wraps details in a result, tagging empty details as FetchEmpty.
func Succeeded(details *GameDetails) DetailsResult {
	if details.IsEmpty() {
		return DetailsResult{Status: FetchEmpty}
	}
	return DetailsResult{Status: FetchSuccess, Details: details}
}

// Unavailable returns a transport failure result.
func Unavailable(err error) DetailsResult {
	return DetailsResult{Status: FetchUnavailable, Err: err}
}

// ParseFailed returns a malformed-response result.
func ParseFailed(err error) DetailsResult {
	return DetailsResult{Status: FetchParseFailed, Err: err}
}
