package seeds

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	documentModel "altroway_backend/internals/features/documents/model"
	notificationModel "altroway_backend/internals/features/home/notifications/model"
	jobModel "altroway_backend/internals/features/jobs/jobs/model"
	savedJobModel "altroway_backend/internals/features/jobs/saved_jobs/model"
	authService "altroway_backend/internals/features/users/auth/service"
	profileModel "altroway_backend/internals/features/users/profiles/model"
	"altroway_backend/internals/helpers/dbtime"
	"altroway_backend/internals/helpers/logger"
)

const (
	TestUserEmail     = "testuser@altroway.com"
	TestUserPassword  = "testpass123"
	AdminUserEmail    = "admin@altroway.com"
	AdminUserPassword = "adminpass123"
)

type AccountCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type TestAccounts struct {
	TestUser  AccountCredentials `json:"testUser"`
	AdminUser AccountCredentials `json:"adminUser"`
}

func strPtr(s string) *string { return &s }

func datePtr(y int, m time.Month, d int) *dbtime.Date {
	v := dbtime.NewDate(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	return &v
}

func testUserProfile(id uuid.UUID) *profileModel.UserProfileModel {
	edu := profileModel.EducationHigher
	return &profileModel.UserProfileModel{
		ID:                   id,
		Email:                TestUserEmail,
		FirstName:            strPtr("John"),
		LastName:             strPtr("Doe"),
		Mobile:               strPtr("+370 612 34567"),
		CityOfBirth:          strPtr("Vilnius"),
		DateOfBirth:          datePtr(1990, time.May, 15),
		Address:              strPtr("Gedimino pr. 15, Vilnius, Lithuania"),
		EducationLevel:       &edu,
		DiplomasCertificates: strPtr("Bachelor's Degree in Computer Science, IELTS Certificate"),
		WorkExperience:       strPtr("3 years as Software Developer at Tech Company"),
		LanguageSkills:       strPtr("English (Fluent), Lithuanian (Native), Russian (Intermediate)"),
		AboutMe:              strPtr("Experienced software developer looking for opportunities in Europe."),
		ApplicationStatus:    profileModel.StatusUnderReview,
	}
}

func adminProfile(id uuid.UUID) *profileModel.UserProfileModel {
	edu := profileModel.EducationHigher
	return &profileModel.UserProfileModel{
		ID:                id,
		Email:             AdminUserEmail,
		FirstName:         strPtr("Sarah"),
		LastName:          strPtr("Admin"),
		Mobile:            strPtr("+370 698 76543"),
		CityOfBirth:       strPtr("Kaunas"),
		DateOfBirth:       datePtr(1985, time.March, 22),
		Address:           strPtr("Laisvės al. 25, Kaunas, Lithuania"),
		EducationLevel:    &edu,
		ApplicationStatus: profileModel.StatusResolved,
		IsAdmin:           true,
	}
}

// Sample rows reference placeholder paths; no blob is uploaded for them.
func sampleDocuments(userID uuid.UUID) []documentModel.DocumentModel {
	return []documentModel.DocumentModel{
		{
			UserID: userID, Name: "Passport_John_Doe.pdf", Type: "Passport",
			Category: documentModel.CategoryMigration, FilePath: "samples/Passport_John_Doe.pdf",
			FileSize: 2048000, MimeType: "application/pdf", Status: documentModel.DocumentValid,
			ExpiryDate: datePtr(2030, time.May, 15),
		},
		{
			UserID: userID, Name: "University_Diploma.pdf", Type: "Educational Certificate",
			Category: documentModel.CategoryPersonal, FilePath: "samples/University_Diploma.pdf",
			FileSize: 1536000, MimeType: "application/pdf", Status: documentModel.DocumentValid,
		},
		{
			UserID: userID, Name: "Work_Experience_Letter.pdf", Type: "Work Certificate",
			Category: documentModel.CategoryPersonal, FilePath: "samples/Work_Experience_Letter.pdf",
			FileSize: 1024000, MimeType: "application/pdf", Status: documentModel.DocumentNeedsReview,
		},
	}
}

func sampleNotifications(userID uuid.UUID) []notificationModel.NotificationModel {
	return []notificationModel.NotificationModel{
		{UserID: userID, Title: "Document Review Complete", Message: "Your passport has been reviewed and approved.", Type: notificationModel.TypeDocumentExpiry},
		{UserID: userID, Title: "New Job Match", Message: "We found 3 new jobs that match your profile.", Type: notificationModel.TypeJobMatch},
		{UserID: userID, Title: "Application Status Update", Message: "Your migration application is now under review.", Type: notificationModel.TypeApplicationUpdate, IsRead: true},
	}
}

// SeedTestAccounts creates the demo user and admin. Identity failures abort
// the run; everything after an identity is best effort and only logged.
// A second run fails on the duplicate identity.
func SeedTestAccounts(ctx context.Context, db *gorm.DB, auth *authService.AuthService) (*TestAccounts, error) {
	log := logger.L().With("seed", "test_accounts")

	//* Test user
	user, err := auth.CreateIdentity(ctx, db, TestUserEmail, TestUserPassword, true)
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Create(testUserProfile(user.ID)).Error; err != nil {
		log.Error("test user profile failed", "err", err)
	}

	//* Admin
	admin, err := auth.CreateIdentity(ctx, db, AdminUserEmail, AdminUserPassword, true)
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Create(adminProfile(admin.ID)).Error; err != nil {
		log.Error("admin profile failed", "err", err)
	}

	//* Test user data
	for _, d := range sampleDocuments(user.ID) {
		if err := db.WithContext(ctx).Create(&d).Error; err != nil {
			log.Error("sample document failed", "name", d.Name, "err", err)
		}
	}

	var jobIDs []uuid.UUID
	if err := db.WithContext(ctx).Model(&jobModel.JobModel{}).
		Order("created_at ASC").Limit(3).Pluck("id", &jobIDs).Error; err != nil {
		log.Error("load jobs failed", "err", err)
	}
	for _, id := range jobIDs {
		if err := db.WithContext(ctx).Create(&savedJobModel.SavedJobModel{UserID: user.ID, JobID: id}).Error; err != nil {
			log.Error("saved job failed", "job_id", id, "err", err)
		}
	}

	for _, n := range sampleNotifications(user.ID) {
		if err := db.WithContext(ctx).Create(&n).Error; err != nil {
			log.Error("sample notification failed", "title", n.Title, "err", err)
		}
	}

	log.Info("test accounts created", "user_id", user.ID, "admin_id", admin.ID, "saved_jobs", len(jobIDs))
	return &TestAccounts{
		TestUser:  AccountCredentials{Email: TestUserEmail, Password: TestUserPassword, Role: "user"},
		AdminUser: AccountCredentials{Email: AdminUserEmail, Password: AdminUserPassword, Role: "admin"},
	}, nil
}
