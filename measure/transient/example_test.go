package transient_test

import (
	"fmt"

	"github.com/cwbudde/algo-speaker/measure/transient"
	"github.com/cwbudde/algo-speaker/speaker/driver"
	"github.com/cwbudde/algo-speaker/speaker/enclosure"
	"github.com/cwbudde/algo-speaker/speaker/system"
)

func ExampleAnalyzer_Analyze() {
	d := driver.New("Example", "12in")
	_ = d.SetFs(35)
	_ = d.SetVas(0.11)
	d.Qts = 0.24

	box, _ := enclosure.NewVented(0.09, 43, 20)
	s, _ := system.NewVented(d, box)

	step, err := s.StepResponse()
	if err != nil {
		fmt.Println(err)
		return
	}

	sampleRate := float64(len(step.X)-1) / step.X[len(step.X)-1]

	m, err := transient.NewAnalyzer(sampleRate).Analyze(step.Y)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("initial %.2f, undershoot %.2f\n", m.Initial, m.Undershoot)
	fmt.Println("settled:", m.SettlingTime > 0 && m.SettlingTime < step.X[len(step.X)-1])
	// Output:
	// initial 1.00, undershoot -0.27
	// settled: true
}
