package config

const (
	defaultLogDir       = "~/.local/share/reshelf/logs"
	defaultChdmanBinary = "chdman"
	defaultUnrarBinary  = "unrar"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

func defaultCopyExtensions() []string {
	return []string{
		".avi", ".mkv", ".mp4", ".m4v", ".mpg", ".mpeg",
		".srt", ".sub", ".idx", ".smi",
	}
}

func defaultArchiveExtensions() []string {
	return []string{".rar"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Tools: Tools{
			Chdman: defaultChdmanBinary,
			Unrar:  defaultUnrarBinary,
		},
		Extract: Extract{
			CopyExtensions:    defaultCopyExtensions(),
			ArchiveExtensions: defaultArchiveExtensions(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
