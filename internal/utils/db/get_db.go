package db

import (
	"os"
	"strconv"

	"gorm.io/gorm"
)

// GetDB monta a conexão a partir das variáveis de ambiente padrão do serviço.
func GetDB() (*gorm.DB, error) {
	host := os.Getenv("DB_HOST")
	port, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		port = 5432 // porta padrão do PostgreSQL
	}

	dbname := os.Getenv("DB_NAME")
	secretID := os.Getenv("DB_SECRET_ID")
	return ConnectDataBase(uint(port), host, dbname, secretID)
}
