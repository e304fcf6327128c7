// Command seeduser creates the initial administrator account.
//
//	seeduser -nombre "Admin" -email admin@tienda.mx -password cambiame
package main

import (
	"flag"
	"os"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/config"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/infra"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/model"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	nombre := flag.String("nombre", "Administrador", "nombre del usuario")
	email := flag.String("email", "", "correo del usuario")
	password := flag.String("password", "", "contraseña")
	rol := flag.String("rol", "administrador", "rol: vendedor | administrador")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo cargar la configuración")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL, cfg.Env)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a la base de datos")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo generar el hash")
	}

	u := &model.Usuario{
		Nombre:       *nombre,
		Email:        *email,
		PasswordHash: string(hash),
		Rol:          *rol,
		Activo:       true,
	}
	if err := db.Create(u).Error; err != nil {
		log.Fatal().Err(err).Msg("no se pudo crear el usuario")
	}

	log.Info().Str("email", u.Email).Str("rol", u.Rol).Msg("usuario creado")
}
