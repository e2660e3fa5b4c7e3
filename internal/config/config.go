package config

import (
	"log"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Store   StoreConfig
	Storage StorageConfig
	Printer PrinterConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Debug bool
}

type StoreConfig struct {
	Name     string
	Currency string
	VATRate  decimal.Decimal
}

type StorageConfig struct {
	UsersFile        string
	ReceiptsDir      string
	ProfileImagesDir string
}

type PrinterConfig struct {
	Type    string
	USBPath string
	Address string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "till-pos")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("STORE_NAME", "Supermarket Till")
	viper.SetDefault("STORE_CURRENCY", "£")
	viper.SetDefault("STORE_VAT_RATE", "0.20")
	viper.SetDefault("USERS_FILE", "users.json")
	viper.SetDefault("RECEIPTS_DIR", "receipts")
	viper.SetDefault("PROFILE_IMAGES_DIR", "profile_images")
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "")
	viper.SetDefault("PRINTER_ADDRESS", "")

	vatRate, err := decimal.NewFromString(viper.GetString("STORE_VAT_RATE"))
	if err != nil {
		log.Printf("Warning: invalid STORE_VAT_RATE %q, using 0.20: %v", viper.GetString("STORE_VAT_RATE"), err)
		vatRate = decimal.RequireFromString("0.20")
	}

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Store: StoreConfig{
			Name:     viper.GetString("STORE_NAME"),
			Currency: viper.GetString("STORE_CURRENCY"),
			VATRate:  vatRate,
		},
		Storage: StorageConfig{
			UsersFile:        viper.GetString("USERS_FILE"),
			ReceiptsDir:      viper.GetString("RECEIPTS_DIR"),
			ProfileImagesDir: viper.GetString("PROFILE_IMAGES_DIR"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
		},
	}
}
