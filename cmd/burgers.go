/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/notargets/gopinn/InputParameters"
	"github.com/notargets/gopinn/model_problems/BurgersPINN"
)

type ModelPINN struct {
	DataFile string
	ICFile   string
	PlotDir  string
	Graph    bool
	Profile  bool
	Delay    time.Duration
}

// BurgersCmd represents the burgers command
var BurgersCmd = &cobra.Command{
	Use:   "burgers",
	Short: "Inverse Burgers model problem, infers advection and viscosity coefficients",
	Long: `
Trains a physics informed neural network against sparse samples of a 1D
viscous Burgers solution field, jointly recovering the field and the two
unknown PDE coefficients (advection, viscosity),

gopinn burgers -F burgers_shock.mat`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("burgers called")
		mp := &ModelPINN{}
		if mp.DataFile, err = cmd.Flags().GetString("dataFile"); err != nil {
			panic(err)
		}
		if mp.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		mp.PlotDir, _ = cmd.Flags().GetString("plotDir")
		mp.Graph, _ = cmd.Flags().GetBool("graph")
		mp.Profile, _ = cmd.Flags().GetBool("profile")
		dr, _ := cmd.Flags().GetInt("delay")
		mp.Delay = time.Duration(dr) * time.Millisecond
		ip := processInputPINN(cmd, mp)
		RunBurgers(mp, ip)
	},
}

func processInputPINN(cmd *cobra.Command, mp *ModelPINN) (ip *InputParameters.InputParametersPINN) {
	var (
		err      error
		willExit bool
	)
	if len(mp.DataFile) == 0 {
		err = fmt.Errorf("must supply a solution data file (-F, --dataFile) in MATLAB v5 (.mat) format")
		fmt.Printf("error: %s\n", err.Error())
		willExit = true
	}
	ip = InputParameters.NewInputParametersPINN()
	if len(mp.ICFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(mp.ICFile); err != nil {
			fmt.Printf("error reading input parameters file: %s\n", err.Error())
			willExit = true
		} else if err = ip.Parse(data); err != nil {
			fmt.Printf("error parsing input parameters file: %s\n", err.Error())
			willExit = true
		}
	}
	if willExit {
		exampleFile := `
########################################
Title: "Burgers Inverse"
NU: 2000
Epochs: 10000
LearningRate: 0.001
HiddenLayers: 8
HiddenWidth: 20
LogFrequency: 10
Noise: 0.0
Seed: 1234
########################################
`
		fmt.Printf("Example Input Parameters File:%s", exampleFile)
		os.Exit(1)
	}
	// Explicit flags override values from the parameters file
	if cmd.Flags().Changed("epochs") {
		ip.Epochs, _ = cmd.Flags().GetInt("epochs")
	}
	if cmd.Flags().Changed("nu") {
		ip.NU, _ = cmd.Flags().GetInt("nu")
	}
	if cmd.Flags().Changed("lr") {
		ip.LearningRate, _ = cmd.Flags().GetFloat64("lr")
	}
	ip.Print()
	return
}

func RunBurgers(mp *ModelPINN, ip *InputParameters.InputParametersPINN) {
	if mp.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	c, err := BurgersPINN.NewBurgersPINN(ip, mp.DataFile, mp.PlotDir)
	if err != nil {
		klog.Fatalf("unable to set up model problem: %+v", err)
	}
	if err = c.Run(mp.Graph, mp.Delay); err != nil {
		klog.Fatalf("training failed: %+v", err)
	}
}

func init() {
	rootCmd.AddCommand(BurgersCmd)
	ipDef := InputParameters.NewInputParametersPINN()
	BurgersCmd.Flags().StringP("dataFile", "F", "", "data file containing t, x and usol arrays in MATLAB v5 format")
	BurgersCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML input parameters file, overrides built in defaults")
	BurgersCmd.Flags().StringP("plotDir", "P", ".", "directory for output figures")
	BurgersCmd.Flags().BoolP("graph", "g", false, "display a live graph while training")
	BurgersCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	BurgersCmd.Flags().Bool("profile", false, "write a CPU profile for the training run")
	BurgersCmd.Flags().Int("epochs", ipDef.Epochs, "number of full batch training epochs")
	BurgersCmd.Flags().Int("nu", ipDef.NU, "number of solution samples drawn for training")
	BurgersCmd.Flags().Float64("lr", ipDef.LearningRate, "Adam learning rate")
}
