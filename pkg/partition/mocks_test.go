package partition

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/mock"
)

// MockCodec simulates the ImageCodec dependency.
type MockCodec struct {
	mock.Mock
}

func (m *MockCodec) Open(path string) (image.Image, imaging.Format, error) {
	args := m.Called(path)
	img, _ := args.Get(0).(image.Image)
	return img, args.Get(1).(imaging.Format), args.Error(2)
}

func (m *MockCodec) Save(img image.Image, path string, format imaging.Format) error {
	args := m.Called(img, path, format)
	return args.Error(0)
}
