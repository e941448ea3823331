package config

// DisplayConfig configures the window and logical screen
type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Framerate    int    `yaml:"framerate"` // Ticks per second
	Title        string `yaml:"title"`
	Resizable    bool   `yaml:"resizable"`
}

// AssetsConfig names the image files, relative to Dir
type AssetsConfig struct {
	Dir        string `yaml:"dir"`
	Background string `yaml:"background"`
	Player     string `yaml:"player"`
	Flyer      string `yaml:"flyer"`
	Runner     string `yaml:"runner"`
	Coin       string `yaml:"coin"`
}

type AudioConfig struct {
	SampleRate int `yaml:"sampleRate"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}
