package cmd

// Config carries every externally provided setting, loaded from the
// environment by the app entrypoint.
type Config struct {
	HTTPPort   string
	AppURL     string
	UploadsDir string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
}
