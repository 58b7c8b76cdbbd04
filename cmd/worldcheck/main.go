// Command worldcheck validates the static world data: every district
// connection, location and NPC reference must resolve. Run it after any
// content change.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/SM-TRIBE/Crismon/internal/world"
)

func main() {
	if err := world.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "world data is broken: %v\n", err)
		os.Exit(1)
	}

	keys := world.DistrictKeys()
	sort.Strings(keys)
	fmt.Printf("world data ok: %d districts, %d locations, %d npcs\n",
		len(world.Districts), len(world.Locations), len(world.NPCs))
	for _, k := range keys {
		d := world.Districts[k]
		fmt.Printf("  %s -> connections %v, locations %v\n", k, d.Connections, d.Locations)
	}
}
