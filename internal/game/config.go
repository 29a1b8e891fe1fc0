package game

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/steverpalmer/first-person-maze/internal/maze"
)

// Config collects everything tweakable about a session. Values resolve as
// defaults, then a .env file if one is present, then FPM_* environment
// variables. The entry point layers CLI flags on top of the result.
type Config struct {
	MazeWidth  int    // rooms across
	MazeHeight int    // rooms deep
	Seed       int64  // 0 means derive from the clock
	WindowFit  float64 // fraction of the display the window should fill
	AssetsDir  string // where to look for texture images
	Audio      bool   // FPM_ENABLE_AUDIO=1 switches the beeps on
}

// LoadConfig resolves the session configuration from the environment.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf(".env not loaded: %v", err)
	}
	width := envInt("FPM_MAZE_WIDTH", 10)
	return Config{
		MazeWidth: width,
		// The classic default: a little wider than deep.
		MazeHeight: envInt("FPM_MAZE_HEIGHT", width*8/10),
		Seed:       envInt64("FPM_SEED", 0),
		WindowFit:  envFloat("FPM_WINDOW_FIT", 0.75),
		AssetsDir:  envString("FPM_ASSETS_DIR", "assets"),
		Audio:      os.Getenv("FPM_ENABLE_AUDIO") == "1",
	}
}

// Validate reports configuration problems the maze generator would reject.
func (c Config) Validate() error {
	_, err := maze.New(c.MazeWidth, c.MazeHeight, 1)
	return err
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("%s=%q is not an integer, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("%s=%q is not an integer, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("%s=%q is not a number, using %g", key, v, fallback)
		return fallback
	}
	return f
}
