package recognition

import (
	"context"
	"errors"
	"fmt"

	"github.com/proodentit/tolon-attendance/internal/pkg/compreface"
)

var (
	ErrNoMatch       = errors.New("no matching face found")
	ErrLowConfidence = errors.New("face match confidence too low")
)

// Recognizer is the slice of the CompreFace client this service needs.
type Recognizer interface {
	Recognize(ctx context.Context, imageBase64 string) (*compreface.RecognizeResponse, error)
}

type Identification struct {
	Subject    string
	Similarity float64
}

type RecognitionServiceImpl struct {
	client    Recognizer
	threshold float64
}

func NewRecognitionService(client Recognizer, threshold float64) *RecognitionServiceImpl {
	return &RecognitionServiceImpl{
		client:    client,
		threshold: threshold,
	}
}

// Identify resolves an image to a subject. A similarity at or above the
// configured threshold is a positive identification; anything below is a
// user-facing denial, not a system error.
func (s *RecognitionServiceImpl) Identify(ctx context.Context, imageBase64 string) (Identification, error) {
	result, err := s.client.Recognize(ctx, imageBase64)
	if err != nil {
		return Identification{}, fmt.Errorf("face recognition failed: %w", err)
	}

	if len(result.Result) == 0 || len(result.Result[0].Subjects) == 0 {
		return Identification{}, ErrNoMatch
	}

	best := result.Result[0].Subjects[0]
	if best.Similarity < s.threshold {
		return Identification{}, ErrLowConfidence
	}

	return Identification{Subject: best.Subject, Similarity: best.Similarity}, nil
}
