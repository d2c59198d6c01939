package config

const (
	defaultOutputDir          = "~/scriptcast/output"
	defaultTemplateDir        = "~/.config/scriptcast/templates"
	defaultLogDir             = "~/.local/share/scriptcast/logs"
	defaultDataDir            = "~/.local/share/scriptcast"
	defaultTTSBaseURL         = "https://api.elevenlabs.io/v1"
	defaultTTSModel           = "eleven_multilingual_v2"
	defaultTTSFormat          = "mp3_44100_128"
	defaultTTSTimeoutSeconds  = 120
	defaultTTSMaxRequestChars = 4800
	defaultVoiceCacheTTL      = 60
	defaultSegmenterMode      = "auto"
	defaultSegmenterMaxChars  = 1500
	defaultLanguage           = "en"
	defaultSyncPolicy         = "shortest"
	defaultLogFormat          = ""
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir:   defaultOutputDir,
			TemplateDir: defaultTemplateDir,
			LogDir:      defaultLogDir,
			DataDir:     defaultDataDir,
		},
		TTS: TTS{
			BaseURL:         defaultTTSBaseURL,
			Model:           defaultTTSModel,
			Format:          defaultTTSFormat,
			TimeoutSeconds:  defaultTTSTimeoutSeconds,
			MaxRequestChars: defaultTTSMaxRequestChars,
			VoiceCacheTTL:   defaultVoiceCacheTTL,
		},
		Segmenter: Segmenter{
			Mode:     defaultSegmenterMode,
			MaxChars: defaultSegmenterMaxChars,
			Language: defaultLanguage,
		},
		Media: Media{
			SyncPolicy: defaultSyncPolicy,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled: true,
		},
	}
}
