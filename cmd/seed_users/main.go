// seed_users importa empleados al ERP a partir del CSV exportado por nómina (ISO-8859-1,
// separado por punto y coma) y les asigna los permisos por defecto de su rol.
//
// Uso: go run ./cmd/seed_users [ruta/empleados.csv]
// Columnas: numero_empleado;nombre;apellido;email;rol;password
// La primera fila es el encabezado. Volver a ejecutarlo actualiza los datos.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
	"github.com/jhoicas/Inspecciones-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Inspecciones-api/pkg/config"
	"github.com/jhoicas/Inspecciones-api/pkg/logger"
)

type seedUser struct {
	EmployeeNumber int64
	FirstName      string
	LastName       string
	Email          string
	Role           string
	Password       string
}

// defaultPermissions máscaras iniciales por rol y módulo.
var defaultPermissions = map[string]map[string]entity.ModulePermission{
	entity.RoleAdmin: {
		entity.ModuleInternalInspections: entity.PermissionAll,
		entity.ModuleOrders:              entity.PermissionAll,
	},
	entity.RoleInspector: {
		entity.ModuleInternalInspections: entity.PermissionRead | entity.PermissionCreate | entity.PermissionEdit,
		entity.ModuleOrders:              entity.PermissionRead,
	},
	entity.RoleSales: {
		entity.ModuleInternalInspections: entity.PermissionRead | entity.PermissionEdit,
		entity.ModuleOrders:              entity.PermissionRead | entity.PermissionCreate,
	},
}

func main() {
	csvPath := "empleados.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	f, err := os.Open(csvPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", csvPath).Msg("abrir CSV")
	}
	defer f.Close()

	users, err := parseUsers(f)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV de empleados")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	permRepo := postgres.NewPermissionRepository(pool)

	for _, u := range users {
		user, err := u.toEntity(time.Now())
		if err != nil {
			log.Fatal().Err(err).Int64("employee_number", u.EmployeeNumber).Msg("preparar usuario")
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatal().Err(err).Int64("employee_number", u.EmployeeNumber).Msg("guardar usuario")
		}
		for module, mask := range defaultPermissions[u.Role] {
			if err := permRepo.Grant(ctx, u.EmployeeNumber, module, mask); err != nil {
				log.Fatal().Err(err).Int64("employee_number", u.EmployeeNumber).Str("module", module).Msg("asignar permisos")
			}
		}
	}
	log.Info().Int("users", len(users)).Msg("empleados importados")
}

// parseUsers lee el CSV en Latin-1 y valida cada fila.
func parseUsers(r io.Reader) ([]seedUser, error) {
	reader := csv.NewReader(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))
	reader.Comma = ';'
	reader.FieldsPerRecord = 6
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("csv vacío")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var out []seedUser
	seen := make(map[int64]bool)
	for line := 2; ; line++ {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		u, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		if seen[u.EmployeeNumber] {
			return nil, fmt.Errorf("línea %d: número de empleado %d repetido", line, u.EmployeeNumber)
		}
		seen[u.EmployeeNumber] = true
		out = append(out, u)
	}
	return out, nil
}

func parseRecord(rec []string) (seedUser, error) {
	for i := range rec {
		rec[i] = strings.TrimSpace(rec[i])
	}
	num, err := strconv.ParseInt(rec[0], 10, 64)
	if err != nil || num <= 0 {
		return seedUser{}, fmt.Errorf("número de empleado inválido %q", rec[0])
	}
	role := strings.ToLower(rec[4])
	if _, ok := defaultPermissions[role]; !ok {
		return seedUser{}, fmt.Errorf("rol desconocido %q", rec[4])
	}
	if !strings.Contains(rec[3], "@") {
		return seedUser{}, fmt.Errorf("email inválido %q", rec[3])
	}
	if len(rec[5]) < 8 {
		return seedUser{}, fmt.Errorf("password debe tener al menos 8 caracteres")
	}
	return seedUser{
		EmployeeNumber: num,
		FirstName:      rec[1],
		LastName:       rec[2],
		Email:          strings.ToLower(rec[3]),
		Role:           role,
		Password:       rec[5],
	}, nil
}

func (u seedUser) toEntity(now time.Time) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &entity.User{
		EmployeeNumber: u.EmployeeNumber,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		PasswordHash:   string(hash),
		Role:           u.Role,
		Status:         entity.UserStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}
