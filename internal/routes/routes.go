package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"employee-portal/internal/repositories"
	"employee-portal/internal/services"
	"employee-portal/pkg/config"
	"employee-portal/pkg/database/postgresql"
	"employee-portal/pkg/middleware"
	"employee-portal/pkg/service"
)

type Loggers struct {
	Main     *zap.Logger
	Auth     *zap.Logger
	Employee *zap.Logger
	Project  *zap.Logger
}

// Services - всё, что нужно маршрутам. Тесты подставляют сюда заглушки.
type Services struct {
	Auth       services.AuthServiceInterface
	Employee   services.EmployeeServiceInterface
	Project    services.ProjectServiceInterface
	Department services.DepartmentServiceInterface
}

func InitRouter(
	e *echo.Echo,
	provider *postgresql.Provider,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	loggers *Loggers,
	cfg *config.Config,
) {
	loggers.Main.Info("InitRouter: Начало создания маршрутов")

	// --- 1. РЕПОЗИТОРИИ ---
	userRepo := repositories.NewUserRepository(loggers.Auth)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	employeeRepo := repositories.NewEmployeeRepository(loggers.Employee)
	departmentRepo := repositories.NewDepartmentRepository(loggers.Main)
	projectRepo := repositories.NewProjectRepository(loggers.Project)

	// --- 2. СЕРВИСЫ ---
	svcs := &Services{
		Auth:       services.NewAuthService(userRepo, cacheRepo, jwtSvc, loggers.Auth, &cfg.Auth),
		Employee:   services.NewEmployeeService(employeeRepo, departmentRepo, loggers.Employee),
		Project:    services.NewProjectService(projectRepo, employeeRepo, loggers.Project),
		Department: services.NewDepartmentService(departmentRepo, loggers.Main),
	}

	e.Use(middleware.RequestConnection(provider))
	RegisterRoutes(e, svcs, cfg.Session, loggers)

	loggers.Main.Info("INIT_ROUTER: Создание маршрутов завершено")
}

// RegisterRoutes вешает контроллеры на echo. Всё, кроме входа и выхода, закрыто проверкой сессии.
func RegisterRoutes(e *echo.Echo, svcs *Services, session config.SessionConfig, loggers *Loggers) {
	authMW := middleware.NewAuthMiddleware(svcs.Auth, session.CookieName, loggers.Auth)

	runAuthRouter(e, svcs.Auth, session, loggers.Auth)

	secureGroup := e.Group("", authMW.Auth, middleware.InjectLogger(loggers.Main))
	runEmployeeRouter(secureGroup, svcs.Employee, loggers.Employee)
	runExportRouter(secureGroup, svcs.Employee, loggers.Employee)
	runProjectRouter(secureGroup, svcs.Project, loggers.Project)
	runDepartmentRouter(secureGroup, svcs.Department, loggers.Main)
}
