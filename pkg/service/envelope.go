package service

import "net/http"

// Envelope is the uniform response shape for every API endpoint:
// meta is endpoint specific metadata and objects is always a list,
// even when a single entity is returned.
type Envelope[M any, O any] struct {
	Meta    M   `json:"meta"`
	Objects []O `json:"objects"`
}

// NewEnvelope builds an envelope, substituting an empty list for nil
// objects so the JSON encoding is always an array.
func NewEnvelope[M any, O any](meta M, objects []O) *Envelope[M, O] {
	if objects == nil {
		objects = []O{}
	}

	return &Envelope[M, O]{
		Meta:    meta,
		Objects: objects,
	}
}

// Created is an envelope for resources created by the request.
type Created[M any, O any] struct {
	*Envelope[M, O]
}

func (c *Created[M, O]) StatusCode() int {
	return http.StatusCreated
}

// NewCreated builds a created envelope.
func NewCreated[M any, O any](meta M, objects []O) *Created[M, O] {
	return &Created[M, O]{
		Envelope: NewEnvelope(meta, objects),
	}
}

// EmptyMeta is used by endpoints without metadata.
type EmptyMeta struct{}
