package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParametersPINN struct {
	Title          string  `yaml:"Title"`
	NU             int     `yaml:"NU"` // Number of solution samples drawn for training
	Epochs         int     `yaml:"Epochs"`
	LearningRate   float64 `yaml:"LearningRate"`
	HiddenLayers   int     `yaml:"HiddenLayers"`
	HiddenWidth    int     `yaml:"HiddenWidth"`
	LogFrequency   int     `yaml:"LogFrequency"`
	Noise          float64 `yaml:"Noise"` // Fraction of sample stddev added as gaussian noise
	Seed           int64   `yaml:"Seed"`
	Lambda1Init    float64 `yaml:"Lambda1Init"`    // Initial advection coefficient
	Lambda2LogInit float64 `yaml:"Lambda2LogInit"` // Initial log viscosity, exp() enforces positivity
}

// NewInputParametersPINN returns the parameter set used by the reference
// Burgers identification problem. A YAML input file overrides any subset.
func NewInputParametersPINN() *InputParametersPINN {
	return &InputParametersPINN{
		Title:          "Burgers Inverse",
		NU:             2000,
		Epochs:         10000,
		LearningRate:   0.001,
		HiddenLayers:   8,
		HiddenWidth:    20,
		LogFrequency:   10,
		Noise:          0,
		Seed:           1234,
		Lambda1Init:    0,
		Lambda2LogInit: -6,
	}
}

func (ip *InputParametersPINN) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersPINN) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8d\t\t= NU (training samples)\n", ip.NU)
	fmt.Printf("%8d\t\t= Epochs\n", ip.Epochs)
	fmt.Printf("%8.5f\t\t= LearningRate\n", ip.LearningRate)
	fmt.Printf("[%d x %d]\t\t= Hidden Layers x Width\n", ip.HiddenLayers, ip.HiddenWidth)
	fmt.Printf("%8d\t\t= LogFrequency\n", ip.LogFrequency)
	fmt.Printf("%8.5f\t\t= Noise\n", ip.Noise)
	fmt.Printf("%8d\t\t= Seed\n", ip.Seed)
	fmt.Printf("%8.5f\t\t= Lambda1Init\n", ip.Lambda1Init)
	fmt.Printf("%8.5f\t\t= Lambda2LogInit\n", ip.Lambda2LogInit)
}
