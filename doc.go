/*
Package cmdassist is a guided lookup wizard for operating-system and network-device commands.

A user picks a platform (Windows, Linux, macOS) or a network device class (firewall, router, switch),
narrows down to a vendor and an action category, and receives a ready-to-use command with explanation,
warnings, examples, advanced alternatives and troubleshooting tips. Free text is accepted wherever a
topic can be typed; when nothing in the catalog matches, a fallback card is synthesized.

# Architecture

  - Catalog (pkg/catalog): the read-only lookup store, embedded as YAML.
  - Navigator (pkg/navigator): the step machine with its back-navigation history.
  - Presenter (pkg/presenter): maps a state to a domain.Screen display record.

The Engine wires them together and is shared by every frontend: the interactive runner, the HTTP
server and the MCP server. State is an explicit value owned by the caller; the Engine itself keeps none.

# Usage

	eng, err := cmdassist.New()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	state := eng.Start(ctx, "")

	state, _ = eng.Navigate(ctx, state, domain.Select("linux"))
	state, _ = eng.Navigate(ctx, state, domain.Select("Network Commands"))

	screen, _ := eng.Render(ctx, state)
	fmt.Println(screen.Result.Command) // ip addr show
*/
package cmdassist
