package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const starterConfig = `actions:
  - name: Tackle
    element: NORMAL
    effects:
      - kind: damage
        target: target
        strength: {kind: base, value: 40}
        hit_rate: 95
  - name: Ember
    element: FIRE
    effects:
      - kind: damage
        target: target
        strength: {kind: base, value: 30}
        hit_rate: 90
      - kind: inflictStatusCondition
        target: target
        condition: BURN
        hit_rate: 10
  - name: Mud Bath
    element: EARTH
    effects:
      - kind: damage
        target: target
        strength: {kind: base, value: 25}
        hit_rate: 90
      - kind: inflictStatChange
        target: target
        stat: SPD
        delta: -1
        hit_rate: 50
monsters:
  - name: Flamander
    element: FIRE
    stats: {hp: 30, atk: 11, def: 10, spd: 12}
    actions: [Tackle, Ember]
  - name: Pebbles
    element: EARTH
    stats: {hp: 32, atk: 10, def: 13, spd: 8}
    actions: [Tackle, Mud Bath]
`

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create [path]",
	Short: "Create a starter competition configuration",
	Long: `Writes a small example configuration with two monsters and three
actions, ready to be played or extended.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := viper.GetString("starter_config")
		if path == "" {
			path = "competition.yaml"
		}
		if len(args) == 1 {
			path = args[0]
		}

		if _, err := os.Stat(path); err == nil {
			fmt.Printf("Error: %s already exists, refusing to overwrite\n", path)
			os.Exit(1)
		}
		if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
			fmt.Printf("Error writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("Created starter configuration at: %s\n", path)
		fmt.Printf("Play it with: monster-competition play %s\n", path)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
