package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	cmsService "altroway_backend/internals/features/cms/content/service"
	documentModel "altroway_backend/internals/features/documents/model"
	documentService "altroway_backend/internals/features/documents/service"
	notificationModel "altroway_backend/internals/features/home/notifications/model"
	notificationService "altroway_backend/internals/features/home/notifications/service"
	applicationModel "altroway_backend/internals/features/jobs/applications/model"
	applicationService "altroway_backend/internals/features/jobs/applications/service"
	jobService "altroway_backend/internals/features/jobs/jobs/service"
	savedJobModel "altroway_backend/internals/features/jobs/saved_jobs/model"
	savedJobService "altroway_backend/internals/features/jobs/saved_jobs/service"
	profileModel "altroway_backend/internals/features/users/profiles/model"
	profileService "altroway_backend/internals/features/users/profiles/service"
)

type DashboardService struct {
	Profiles      *profileService.ProfileService
	Documents     *documentService.DocumentService
	Applications  *applicationService.ApplicationService
	SavedJobs     *savedJobService.SavedJobService
	Notifications *notificationService.NotificationService
	Jobs          *jobService.JobService
	Content       *cmsService.ContentService
	DB            *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{
		Profiles:      profileService.NewProfileService(db, nil),
		Documents:     documentService.NewDocumentService(db, nil),
		Applications:  applicationService.NewApplicationService(db),
		SavedJobs:     savedJobService.NewSavedJobService(db),
		Notifications: notificationService.NewNotificationService(db),
		Jobs:          jobService.NewJobService(db),
		Content:       cmsService.NewContentService(db),
		DB:            db,
	}
}

type UserDashboard struct {
	Profile       *profileModel.UserProfileModel         `json:"profile"`
	Documents     []documentModel.DocumentModel          `json:"documents"`
	Applications  []applicationModel.JobApplicationModel `json:"applications"`
	SavedJobs     []savedJobModel.SavedJobModel          `json:"saved_jobs"`
	Notifications []notificationModel.NotificationModel  `json:"notifications"`
	UnreadCount   int64                                  `json:"unread_count"`
}

// ForUser loads every dashboard section concurrently; the first failure
// cancels the rest and is returned.
func (s *DashboardService) ForUser(ctx context.Context, userID uuid.UUID) (*UserDashboard, error) {
	var out UserDashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.Profile, err = s.Profiles.GetProfile(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		out.Documents, err = s.Documents.GetUserDocuments(gctx, userID, "")
		return err
	})
	g.Go(func() (err error) {
		out.Applications, err = s.Applications.GetUserApplications(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		out.SavedJobs, err = s.SavedJobs.GetSavedJobs(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		out.Notifications, err = s.Notifications.GetUserNotifications(gctx, userID, false)
		return err
	})
	g.Go(func() (err error) {
		out.UnreadCount, err = s.Notifications.CountUnread(gctx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

type AdminStats struct {
	Users        int64 `json:"users"`
	Admins       int64 `json:"admins"`
	ActiveJobs   int64 `json:"active_jobs"`
	Documents    int64 `json:"documents"`
	Applications int64 `json:"applications"`
	Content      int64 `json:"content"`
}

func (s *DashboardService) AdminStats(ctx context.Context) (*AdminStats, error) {
	var st AdminStats
	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int64, m any, where ...any) func() error {
		return func() error {
			q := s.DB.WithContext(gctx).Model(m)
			if len(where) > 0 {
				q = q.Where(where[0], where[1:]...)
			}
			return q.Count(dst).Error
		}
	}
	g.Go(count(&st.Users, &profileModel.UserProfileModel{}))
	g.Go(count(&st.Admins, &profileModel.UserProfileModel{}, "is_admin = ?", true))
	g.Go(func() (err error) {
		st.ActiveJobs, err = s.Jobs.CountActive(gctx)
		return err
	})
	g.Go(count(&st.Documents, &documentModel.DocumentModel{}))
	g.Go(count(&st.Applications, &applicationModel.JobApplicationModel{}))
	g.Go(func() (err error) {
		st.Content, err = s.Content.Count(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &st, nil
}
