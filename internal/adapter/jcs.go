package adapter

import "github.com/gowebpki/jcs"

// JCS canonicalizes JSON documents (RFC 8785)
//
//go:generate mockgen -source=jcs.go -destination=../mocks/jcs.go -package=mocks -mock_names=JCS=MockJCS
type JCS interface {
	Transform(data []byte) ([]byte, error)
}

type canonicalizer struct{}

// NewJCS creates a JCS backed by gowebpki/jcs
func NewJCS() JCS {
	return canonicalizer{}
}

func (canonicalizer) Transform(data []byte) ([]byte, error) {
	return jcs.Transform(data)
}
