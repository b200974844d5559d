package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	GRPCAddr string
	HTTPAddr string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	KafkaBroker           string
	KafkaUsername         string
	KafkaPassword         string
	KafkaTLS              bool
	KafkaGroupID          string
	KafkaTopicUserCreated string

	LogLevel   string
	LogDev     bool
	BcryptCost int
}

// LoadConfig reads the environment. Outside prod the given env files (or
// .env) override it first.
func LoadConfig(envFiles ...string) Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(envFiles...); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	return Config{
		Env:      os.Getenv("ENV"),
		GRPCAddr: getString("GRPC_ADDR", "0.0.0.0:9090"),
		HTTPAddr: getString("HTTP_ADDR", "0.0.0.0:3000"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		RedisAddr:     getString("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getInt("REDIS_DB", 0),
		RedisPrefix:   getString("REDIS_PREFIX", "user_service:"),

		KafkaBroker:           os.Getenv("KAFKA_BROKER"),
		KafkaUsername:         os.Getenv("KAFKA_USERNAME"),
		KafkaPassword:         os.Getenv("KAFKA_PASSWORD"),
		KafkaTLS:              getBool("KAFKA_TLS", false),
		KafkaGroupID:          getString("KAFKA_GROUP_ID", "user-service"),
		KafkaTopicUserCreated: getString("KAFKA_TOPIC_USER_CREATED", "user.created"),

		LogLevel:   getString("LOG_LEVEL", "info"),
		LogDev:     getBool("LOG_DEV", false),
		BcryptCost: getInt("BCRYPT_COST", 10),
	}
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: %s=%q is not a number, using %d", key, v, def)
		return def
	}
	return n
}

func getBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Warning: %s=%q is not a bool, using %t", key, v, def)
		return def
	}
	return b
}
