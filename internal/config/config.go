package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App     App     `mapstructure:",squash"`
	Server  Server  `mapstructure:",squash"`
	Dataset Dataset `mapstructure:",squash"`
	Map     Map     `mapstructure:",squash"`
	Page    Page    `mapstructure:",squash"`
	Cors    Cors    `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Dataset struct {
	Listings2019Path    string `mapstructure:"listings_2019_path"`
	Listings2020Path    string `mapstructure:"listings_2020_path"`
	NeighbourhoodsPath  string `mapstructure:"neighbourhoods_path"`
	NeighbourhoodColumn string `mapstructure:"neighbourhood_column"`
	FeatureIDKey        string `mapstructure:"feature_id_key"`
}

type Map struct {
	Style      string  `mapstructure:"map_style"`
	Zoom       float64 `mapstructure:"map_zoom"`
	CenterLat  float64 `mapstructure:"map_center_lat"`
	CenterLon  float64 `mapstructure:"map_center_lon"`
	Opacity    float64 `mapstructure:"map_opacity"`
	ColorScale string  `mapstructure:"map_color_scale"`
}

type Page struct {
	StylesheetURL string `mapstructure:"stylesheet_url"`
	PlotlyURL     string `mapstructure:"plotly_url"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "127.0.0.1")
	viper.SetDefault("PORT", 8050)

	viper.SetDefault("LISTINGS_2019_PATH", "listings_2019_sep.csv.gz")
	viper.SetDefault("LISTINGS_2020_PATH", "listings_2020_sep.csv.gz")
	viper.SetDefault("NEIGHBOURHOODS_PATH", "neighbourhoods.geojson")
	viper.SetDefault("NEIGHBOURHOOD_COLUMN", "neighbourhood_cleansed") // "neighbourhood" no CSV é texto livre
	viper.SetDefault("FEATURE_ID_KEY", "properties.neighbourhood")

	// Centro e zoom ajustados para Toronto
	viper.SetDefault("MAP_STYLE", "carto-positron")
	viper.SetDefault("MAP_ZOOM", 9.5)
	viper.SetDefault("MAP_CENTER_LAT", 43.722275)
	viper.SetDefault("MAP_CENTER_LON", -79.366074)
	viper.SetDefault("MAP_OPACITY", 0.5)
	viper.SetDefault("MAP_COLOR_SCALE", "Viridis")

	viper.SetDefault("STYLESHEET_URL", "https://codepen.io/chriddyp/pen/bWLwgP.css")
	viper.SetDefault("PLOTLY_URL", "https://cdn.plot.ly/plotly-2.27.0.min.js")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:8050,http://127.0.0.1:8050")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile carrega o arquivo .env do diretório atual ou do diretório pai
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
