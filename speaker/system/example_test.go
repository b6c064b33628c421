package system_test

import (
	"fmt"

	"github.com/cwbudde/algo-speaker/speaker/driver"
	"github.com/cwbudde/algo-speaker/speaker/enclosure"
	"github.com/cwbudde/algo-speaker/speaker/system"
)

func ExampleSpeaker_F3() {
	d := driver.New("Example", "12in")
	_ = d.SetFs(35)
	_ = d.SetVas(0.11)
	d.Qts = 0.24
	d.Qes = 0.25
	d.Sd = 0.0855
	d.Xmax = 0.0135

	box, _ := enclosure.NewVented(0.09, 43, 20)

	s, err := system.NewVented(d, box)
	if err != nil {
		fmt.Println(err)
		return
	}

	f3, _ := s.F3()
	eta, _ := s.ReferenceEfficiency()
	out, _ := s.MaxOutput()

	fmt.Printf("f3 = %.2f Hz\n", f3)
	fmt.Printf("efficiency = %.2f %%\n", eta*100)
	fmt.Printf("max SPL = %.1f dB\n", out.SPL)
	// Output:
	// f3 = 39.28 Hz
	// efficiency = 2.04 %
	// max SPL = 121.8 dB
}
