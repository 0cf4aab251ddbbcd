package chart

import (
	"bytes"
	"fmt"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderer_Render(t *testing.T) {
	renderer := NewRenderer()

	t.Run("requires at least two points", func(t *testing.T) {
		_, err := renderer.Render([]Point{{Label: "2025-03-14 09:00:00", Value: 500}})
		assert.ErrorIs(t, err, ErrNotEnoughPoints)

		_, err = renderer.Render(nil)
		assert.ErrorIs(t, err, ErrNotEnoughPoints)
	})

	t.Run("renders a decodable PNG", func(t *testing.T) {
		points := []Point{
			{Label: "2025-03-14 09:00:00", Value: 500},
			{Label: "2025-03-15 10:00:00", Value: 300},
			{Label: "2025-03-16 11:00:00", Value: 4000},
		}

		data, err := renderer.Render(points)

		assert.NoError(t, err)
		img, err := png.Decode(bytes.NewReader(data))
		assert.NoError(t, err)
		assert.Equal(t, renderer.style.Width, img.Bounds().Dx())
		assert.Equal(t, renderer.style.Height, img.Bounds().Dy())
	})

	t.Run("flat series still renders", func(t *testing.T) {
		points := []Point{
			{Label: "2025-03-14 09:00:00", Value: 100},
			{Label: "2025-03-15 10:00:00", Value: 100},
		}

		data, err := renderer.Render(points)

		assert.NoError(t, err)
		_, err = png.Decode(bytes.NewReader(data))
		assert.NoError(t, err)
	})

	t.Run("long series thins out date labels", func(t *testing.T) {
		points := make([]Point, 40)
		for i := range points {
			points[i] = Point{
				Label: fmt.Sprintf("2025-03-%02d 09:00:00", i+1),
				Value: float64(i * 10),
			}
		}

		data, err := renderer.Render(points)

		assert.NoError(t, err)
		_, err = png.Decode(bytes.NewReader(data))
		assert.NoError(t, err)
	})
}
