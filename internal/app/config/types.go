package config

type (
	InternalConfig struct {
		App    App
		JWT    JWT
		Mailer Mailer
		Avatar Avatar
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		SMTP     SMTP
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	App struct {
		Env                      string
		Port                     string
		BaseURL                  string
		EndpointPrefix           string
		MaxRequests              int
		ShutdownTimeout          int
		ResendVerifyMaxPerWindow int
		ResendVerifyWindowInSec  int
		AvatarMaxUploadSizeInMB  int
	}

	JWT struct {
		Secret               string
		ExpTimeInHour        int
		EnforceSingleSession bool
	}

	Mailer struct {
		EmailSender string
		Queue       string
	}

	Avatar struct {
		StorageDriver string
		TmpDir        string
		PublicDir     string
		PublicPath    string
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
)
