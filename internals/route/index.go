// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	authService "sekolahku_backend/internals/features/users/auth/service"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
	routeDetails "sekolahku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	jwtGuard := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
		BlacklistChecker:    authService.IsTokenBlacklisted(db),
	})

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// STAFF → semua pegawai sekolah
	log.Println("[INFO] Setting up STAFF group...")
	staff := app.Group("/api/u",
		jwtGuard,
		authMiddleware.OnlyRoles(
			constants.RoleErrorStaff("portal sekolah"),
			constants.StaffRoles...,
		),
	)

	// TEACHER
	log.Println("[INFO] Setting up TEACHER group...")
	teacher := app.Group("/api/t",
		jwtGuard,
		authMiddleware.OnlyRoles(
			constants.RoleErrorTeacher("portal guru"),
			constants.RoleTeacher,
		),
	)

	// STUDENT
	log.Println("[INFO] Setting up STUDENT group...")
	student := app.Group("/api/s",
		jwtGuard,
		authMiddleware.OnlyRoles(
			"❌ Hanya siswa yang boleh mengakses portal ujian.",
			constants.StudentOnly...,
		),
	)

	// CLERK ke atas (TU, kepala sekolah, admin)
	log.Println("[INFO] Setting up CLERK group...")
	clerk := app.Group("/api/c",
		jwtGuard,
		authMiddleware.OnlyRoles(
			constants.RoleErrorStaff("administrasi sekolah"),
			constants.ClerkAndAbove...,
		),
	)

	// APPROVER (kepala sekolah + admin)
	log.Println("[INFO] Setting up APPROVER group...")
	approver := app.Group("/api/a",
		jwtGuard,
		authMiddleware.OnlyRoles(
			constants.RoleErrorApprover("persetujuan"),
			constants.ApproverRoles...,
		),
	)

	// ADMIN only
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/adm",
		jwtGuard,
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("administrasi sistem"),
			constants.AdminOnly...,
		),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting School routes...")
	routeDetails.SchoolPublicRoutes(public, db)
	routeDetails.SchoolStaffRoutes(staff, db)
	routeDetails.SchoolTeacherRoutes(teacher, db)
	routeDetails.SchoolClerkRoutes(clerk, db)
	routeDetails.SchoolAdminRoutes(approver, db)
	routeDetails.SchoolAdminOnlyRoutes(admin, db)

	log.Println("[INFO] Mounting CBT routes...")
	routeDetails.CBTTeacherRoutes(teacher, db)
	routeDetails.CBTStudentRoutes(student, db)

	log.Println("[INFO] Mounting Permission routes...")
	routeDetails.PermissionStaffRoutes(staff, db)
	routeDetails.PermissionApproverRoutes(approver, db)

	log.Println("[INFO] Mounting Finance routes...")
	routeDetails.FinancePublicRoutes(public, db)
	routeDetails.FinanceClerkRoutes(clerk, db)

	log.Println("[INFO] Mounting News routes...")
	routeDetails.NewsPublicRoutes(public, db)
	routeDetails.NewsStaffRoutes(clerk, db)

	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserAdminRoutes(admin, db)
}
