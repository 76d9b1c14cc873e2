package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCuratedHardware(t *testing.T) {
	c := New(nil)

	res := c.Classify("Boston Dynamics", "VP of Engineering", nil)
	assert.Equal(t, Hardware, res.Type)
	assert.InDelta(t, 1.0, res.Confidence, 1e-9)
	assert.Equal(t, "auto", res.Source)

	require.NotEmpty(t, res.Signals)
	assert.Equal(t, "curated_list", res.Signals[0].Source)
}

func TestClassifyCuratedStripsSuffix(t *testing.T) {
	c := New(nil)
	res := c.Classify("Boston Dynamics Inc.", "Engineer", nil)
	assert.Equal(t, Hardware, res.Type)
	assert.InDelta(t, 1.0, res.Confidence, 1e-9)
}

func TestClassifyCuratedSoftware(t *testing.T) {
	c := New(nil)
	res := c.Classify("Stripe", "VP of Software Engineering", nil)
	assert.Equal(t, Software, res.Type)
	assert.InDelta(t, 1.0, res.Confidence, 1e-9)
}

func TestClassifyNameCue(t *testing.T) {
	c := New(nil)

	res := c.Classify("Acme Robotics", "Engineering Manager", nil)
	assert.Equal(t, Hardware, res.Type)
	assert.InDelta(t, 0.7, res.Confidence, 1e-9)

	res = c.Classify("Acme Cloud", "Engineering Manager", nil)
	assert.Equal(t, Software, res.Type)
}

func TestClassifyTitleCue(t *testing.T) {
	c := New(nil)
	res := c.Classify("Initech", "Senior Firmware Engineer", nil)
	assert.Equal(t, Hardware, res.Type)
	assert.InDelta(t, 0.6, res.Confidence, 1e-9)
}

func TestClassifyDualDomain(t *testing.T) {
	c := New(nil)

	// curated both
	res := c.Classify("NVIDIA", "Engineer", nil)
	assert.Equal(t, Both, res.Type)

	// opposing cues at equal strength
	res = c.Classify("Acme Robotics Cloud", "Engineer", nil)
	assert.Equal(t, Both, res.Type)
}

func TestClassifyUnknown(t *testing.T) {
	c := New(nil)
	res := c.Classify("Initech", "Operations Manager", nil)
	assert.Equal(t, Unknown, res.Type)
	assert.Zero(t, res.Confidence)
	assert.Empty(t, res.Signals)
}

func TestClassifyEmptyInputs(t *testing.T) {
	c := New(nil)
	res := c.Classify("", "", nil)
	assert.Equal(t, Unknown, res.Type)
}

func TestClassifyManualOverride(t *testing.T) {
	c := New(map[string]string{"Initech Inc": "hardware"})

	res := c.Classify("Initech", "Backend Engineer", nil)
	assert.Equal(t, Hardware, res.Type)
	assert.Equal(t, "manual", res.Source)
	assert.InDelta(t, 1.0, res.Confidence, 1e-9)
}

func TestClassifyDomainKeywordOverlap(t *testing.T) {
	c := New(nil)
	res := c.Classify("Initech", "Robotics Platform Lead", []string{"robotics", "simulation"})
	assert.Equal(t, Hardware, res.Type)
}

func TestClassifyIsDeterministic(t *testing.T) {
	c := New(nil)
	first := c.Classify("Acme Robotics", "Firmware Engineer", []string{"robotics"})
	for i := 0; i < 10; i++ {
		again := c.Classify("Acme Robotics", "Firmware Engineer", []string{"robotics"})
		assert.Equal(t, first, again)
	}
}
