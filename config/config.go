package config

import (
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type MongoConfig struct {
	URI    string `mapstructure:"uri"`
	DBName string `mapstructure:"dbName"`
}

type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	Expiration string `mapstructure:"expiration"`
}

// CarrierConfig holds the endpoints and credentials for the carrier's
// booking APIs, plus the booking behaviour flags.
type CarrierConfig struct {
	BookingURL string `mapstructure:"bookingURL"`
	WaybillURL string `mapstructure:"waybillURL"`
	APIUID     string `mapstructure:"apiUID"`
	APIKey     string `mapstructure:"apiKey"`
	ClientURL  string `mapstructure:"clientURL"`
	// TestMode books against the carrier's test environment and tags
	// created labels accordingly.
	TestMode bool `mapstructure:"testMode"`
	// RecipientNotification enables the recipientNotification service on
	// outgoing booking payloads.
	RecipientNotification bool `mapstructure:"recipientNotification"`
	// Services is the list of service keys enabled for this store. Empty
	// means every service in the catalogue.
	Services []string `mapstructure:"services"`
	// ServiceName selects which display name column of the catalogue to
	// expose, e.g. "ProductName".
	ServiceName string `mapstructure:"serviceName"`
}

// SenderConfig is the store's own booking address, used as the sender
// party on every consignment request.
type SenderConfig struct {
	StoreName     string `mapstructure:"storeName"`
	Street1       string `mapstructure:"street1"`
	Street2       string `mapstructure:"street2"`
	PostCode      string `mapstructure:"postCode"`
	City          string `mapstructure:"city"`
	Country       string `mapstructure:"country"`
	Reference     string `mapstructure:"reference"`
	ContactPerson string `mapstructure:"contactPerson"`
	Email         string `mapstructure:"email"`
	Phone         string `mapstructure:"phone"`
}

type S3Config struct {
	Bucket           string `mapstructure:"bucket"`
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"accessKeyID"`
	SecretAccessKey  string `mapstructure:"secretAccessKey"`
	CloudFrontDomain string `mapstructure:"cloudFrontDomain"`
}

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Carrier CarrierConfig `mapstructure:"carrier"`
	Sender  SenderConfig  `mapstructure:"sender"`
	S3      S3Config      `mapstructure:"s3"`
}

// LoadConfig reads the config file and overrides values from the environment.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()

	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("mongo.uri", "MONGO_URI")
	viper.BindEnv("mongo.dbName", "MONGO_DBNAME")
	viper.BindEnv("jwt.secret", "JWT_SECRET")
	viper.BindEnv("jwt.expiration", "JWT_EXPIRATION")
	viper.BindEnv("carrier.bookingURL", "CARRIER_BOOKING_URL")
	viper.BindEnv("carrier.waybillURL", "CARRIER_WAYBILL_URL")
	viper.BindEnv("carrier.apiUID", "CARRIER_API_UID")
	viper.BindEnv("carrier.apiKey", "CARRIER_API_KEY")
	viper.BindEnv("carrier.clientURL", "CARRIER_CLIENT_URL")
	viper.BindEnv("carrier.testMode", "CARRIER_TEST_MODE")
	viper.BindEnv("s3.bucket", "S3_BUCKET")
	viper.BindEnv("s3.region", "S3_REGION")
	viper.BindEnv("s3.accessKeyID", "S3_ACCESS_KEY_ID")
	viper.BindEnv("s3.secretAccessKey", "S3_SECRET_ACCESS_KEY")
	viper.BindEnv("s3.cloudFrontDomain", "S3_CLOUDFRONT_DOMAIN")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("carrier.bookingURL", "https://api.bring.com/booking/api/booking")
	viper.SetDefault("carrier.waybillURL", "https://api.bring.com/mailbox-labels/api/waybill")
	viper.SetDefault("carrier.serviceName", "ProductName")

	// A missing file is fine, the environment can carry everything.
	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return
}
