package defaults

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_KnownPropDefault(t *testing.T) {
	d := NewKnowledgeDetector()

	det := d.Detect("Button", "mode", map[string]int{`"default"`: 7, `"ghost"`: 3}, 10)
	require.NotNil(t, det)
	assert.Equal(t, `"default"`, det.Value)
	assert.Equal(t, ConfidenceHigh, det.Confidence)
	assert.Equal(t, 7, det.Count)
	assert.Equal(t, 10, det.Total)
}

func TestDetect_KnownDefaultNeverWritten(t *testing.T) {
	d := NewKnowledgeDetector()
	// The default exists but nobody wrote it explicitly, so there is
	// nothing redundant to report.
	det := d.Detect("Button", "mode", map[string]int{`"ghost"`: 5}, 5)
	assert.Nil(t, det)
}

func TestDetect_AsElement(t *testing.T) {
	d := NewKnowledgeDetector()

	det := d.Detect("Button", "as", map[string]int{`"button"`: 4, `"a"`: 2}, 6)
	require.NotNil(t, det)
	assert.Equal(t, `"button"`, det.Value)
	assert.Equal(t, ConfidenceHigh, det.Confidence)

	assert.Nil(t, d.Detect("UnknownComponent", "as", map[string]int{`"div"`: 4}, 4))
}

func TestDetect_Statistical(t *testing.T) {
	d := NewKnowledgeDetector()

	t.Run("dominant value is medium", func(t *testing.T) {
		det := d.Detect("Card", "shadow", map[string]int{"1": 17, "2": 3}, 20)
		require.NotNil(t, det)
		assert.Equal(t, "1", det.Value)
		assert.Equal(t, ConfidenceMedium, det.Confidence)
	})

	t.Run("majority value is low", func(t *testing.T) {
		det := d.Detect("Card", "shadow", map[string]int{"1": 13, "2": 7}, 20)
		require.NotNil(t, det)
		assert.Equal(t, ConfidenceLow, det.Confidence)
	})

	t.Run("small population reports nothing", func(t *testing.T) {
		assert.Nil(t, d.Detect("Card", "shadow", map[string]int{"1": 5}, 5))
	})

	t.Run("split population reports nothing", func(t *testing.T) {
		assert.Nil(t, d.Detect("Card", "shadow", map[string]int{"1": 6, "2": 6, "3": 8}, 20))
	})

	t.Run("category tags are not literals", func(t *testing.T) {
		assert.Nil(t, d.Detect("Card", "shadow", map[string]int{"<variable>": 20}, 20))
	})

	t.Run("deterministic tie break", func(t *testing.T) {
		values := map[string]int{`"a"`: 8, `"b"`: 8, "<expression>": 0}
		first := d.Detect("Card", "shadow", values, 10)
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, d.Detect("Card", "shadow", values, 10))
		}
	})
}

func TestDetect_EmptyInput(t *testing.T) {
	d := NewKnowledgeDetector()
	assert.Nil(t, d.Detect("Button", "mode", nil, 0))
	assert.Nil(t, d.Detect("Button", "mode", map[string]int{}, 10))
}
