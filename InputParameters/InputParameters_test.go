package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputParametersPINN(t *testing.T) {
	{ // Defaults match the reference problem setup
		ip := NewInputParametersPINN()
		assert.Equal(t, 2000, ip.NU)
		assert.Equal(t, 10000, ip.Epochs)
		assert.Equal(t, 0.001, ip.LearningRate)
		assert.Equal(t, 8, ip.HiddenLayers)
		assert.Equal(t, 20, ip.HiddenWidth)
		assert.Equal(t, -6., ip.Lambda2LogInit)
	}
	{ // YAML overrides a subset, leaves the rest at defaults
		ip := NewInputParametersPINN()
		data := []byte(`
Title: "Quick Run"
NU: 500
Epochs: 250
Noise: 0.01
`)
		assert.NoError(t, ip.Parse(data))
		assert.Equal(t, "Quick Run", ip.Title)
		assert.Equal(t, 500, ip.NU)
		assert.Equal(t, 250, ip.Epochs)
		assert.Equal(t, 0.01, ip.Noise)
		assert.Equal(t, 0.001, ip.LearningRate)
		assert.Equal(t, 8, ip.HiddenLayers)
	}
	{ // Malformed YAML is an error
		ip := NewInputParametersPINN()
		assert.Error(t, ip.Parse([]byte("NU: [not an int")))
	}
}
