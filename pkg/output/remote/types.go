package remote

type EmptyResponse struct {
}

type PresentRequest struct {
	// Frame is the rendered surface, PNG-encoded for the wire.
	Frame []byte
}
