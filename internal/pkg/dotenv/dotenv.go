package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const DefaultFile = ".env"

// Load подгружает переменные из path, если файл существует. Уже заданные
// переменные окружения не перезаписываются. loaded == false значит файла нет.
func Load(path string) (loaded bool, err error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err := godotenv.Load(path); err != nil {
		return false, fmt.Errorf("load %s: %w", path, err)
	}
	return true, nil
}

// ParsePortFlag разбирает args и переносит флаг -port в PORT.
func ParsePortFlag(flags *flag.FlagSet, args []string) error {
	var portFlag string
	flags.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if portFlag != "" {
		if err := os.Setenv("PORT", portFlag); err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
