package cli

import (
	"fmt"

	"github.com/diillson/aws-tag-inventory-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
     _____             ___                      _
    |_   _|_ _  __ _  |_ _|_ ____   _____ _ __ | |_ ___  _ __ _   _
      | |/ _' |/ _' |  | || '_ \ \ / / _ \ '_ \| __/ _ \| '__| | | |
      | | (_| | (_| |  | || | | \ V /  __/ | | | || (_) | |  | |_| |
      |_|\__,_|\__, | |___|_| |_|\_/ \___|_| |_|\__\___/|_|   \__, |
               |___/                                          |___/
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))
	fmt.Println(blue(fmt.Sprintf("AWS Tag Inventory CLI (v%s)", version.FormatVersion())))
}
