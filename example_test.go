package cmdassist_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/cmdassist"
	"github.com/aretw0/cmdassist/pkg/domain"
)

// ExampleNew walks the Linux path to a network command.
func ExampleNew() {
	eng, err := cmdassist.New()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	state := eng.Start(ctx, "")
	for _, in := range []domain.Input{domain.Select("linux"), domain.Select("Network Commands")} {
		state, _ = eng.Navigate(ctx, state, in)
	}

	screen, _ := eng.Render(ctx, state)
	fmt.Println(screen.Step)
	fmt.Println(screen.Result.Command)
	fmt.Println(len(screen.Result.Variations))
	// Output:
	// result
	// ip addr show
	// 6
}

// ExampleEngine_Lookup synthesizes a card without walking the wizard.
func ExampleEngine_Lookup() {
	eng, err := cmdassist.New()
	if err != nil {
		log.Fatal(err)
	}

	r, _ := eng.Lookup("fortinet", "show arp")
	fmt.Println(r.Command)
	fmt.Println(r.Explanation)
	// Output:
	// # show arp
	// Command syntax for: show arp on Fortinet
}
