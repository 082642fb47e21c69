package services

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// Classifier is the dish-recognition capability: one image in, one label
// from the closed dish set plus a confidence in [0,1] out.
type Classifier interface {
	Classify(ctx context.Context, image []byte) (label string, confidence float64, err error)
}

type RekognitionClassifier struct {
	client *rekognition.Client
}

func NewRekognitionClassifier() (*RekognitionClassifier, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &RekognitionClassifier{client: rekognition.NewFromConfig(cfg)}, nil
}

// Classify detects labels on the image and maps the best match into the
// dish set. When none of the detected labels is a known dish, the top
// label is normalized and returned anyway; the nutrition lookup supplies
// defaults for labels without a reference row.
func (r *RekognitionClassifier) Classify(ctx context.Context, image []byte) (string, float64, error) {
	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: image},
		MaxLabels:     aws.Int32(10),
		MinConfidence: aws.Float32(55),
	})
	if err != nil {
		return "", 0, err
	}
	if len(out.Labels) == 0 {
		return "", 0, errors.New("no labels detected")
	}

	for _, l := range out.Labels {
		name := normalizeDishLabel(aws.ToString(l.Name))
		if _, ok := dishClassSet[name]; ok {
			return name, float64(aws.ToFloat32(l.Confidence)) / 100, nil
		}
	}

	top := out.Labels[0]
	return normalizeDishLabel(aws.ToString(top.Name)), float64(aws.ToFloat32(top.Confidence)) / 100, nil
}

func normalizeDishLabel(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}
