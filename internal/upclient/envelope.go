package upclient

// Pagination carries the cursors of a paginated response. Next and
// Prev, when present, are opaque absolute URLs to be requested as-is.
type Pagination struct {
	Next string `json:"next,omitempty"`
	Prev string `json:"prev,omitempty"`
}

// ResourceEnvelope is the wrapper around a list of resources.
// Pagination terminates when Next is absent.
type ResourceEnvelope[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// SingleResourceEnvelope is the wrapper around one resource.
type SingleResourceEnvelope[T any] struct {
	Data T `json:"data"`
}

// resourceIdentifier references a resource by type and id, used in
// relationship mutation bodies.
type resourceIdentifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type relationshipsBody struct {
	Data []resourceIdentifier `json:"data"`
}

type errorSource struct {
	Parameter string `json:"parameter,omitempty"`
	Pointer   string `json:"pointer,omitempty"`
}

type errorObject struct {
	Status string       `json:"status"`
	Title  string       `json:"title"`
	Detail string       `json:"detail"`
	Source *errorSource `json:"source,omitempty"`
}

type errorEnvelope struct {
	Errors []errorObject `json:"errors"`
}
