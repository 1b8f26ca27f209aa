package jobs

import (
	_ "embed"
	"encoding/json"

	"gorm.io/gorm"

	"altroway_backend/internals/features/jobs/jobs/model"
	"altroway_backend/internals/helpers/logger"
)

//go:embed data_jobs.json
var catalog []byte

type JobSeed struct {
	Title        string  `json:"title"`
	Company      string  `json:"company"`
	Location     string  `json:"location"`
	Country      string  `json:"country"`
	Industry     string  `json:"industry"`
	SalaryMin    *int    `json:"salary_min"`
	SalaryMax    *int    `json:"salary_max"`
	JobType      string  `json:"job_type"`
	ProcessTime  string  `json:"process_time"`
	IsUrgent     bool    `json:"is_urgent"`
	Description  *string `json:"description"`
	Requirements *string `json:"requirements"`
}

// SeedJobs inserts the sample catalog, skipping jobs that already exist
// with the same title and company. Returns the number inserted.
func SeedJobs(db *gorm.DB) (int, error) {
	var inputs []JobSeed
	if err := json.Unmarshal(catalog, &inputs); err != nil {
		return 0, err
	}

	log := logger.L().With("seed", "jobs")
	inserted := 0
	for _, data := range inputs {
		var n int64
		if err := db.Model(&model.JobModel{}).
			Where("title = ? AND company = ?", data.Title, data.Company).
			Count(&n).Error; err != nil {
			return inserted, err
		}
		if n > 0 {
			log.Debug("job already exists, skipped", "title", data.Title, "company", data.Company)
			continue
		}

		job := model.JobModel{
			Title:        data.Title,
			Company:      data.Company,
			Location:     data.Location,
			Country:      data.Country,
			Industry:     data.Industry,
			SalaryMin:    data.SalaryMin,
			SalaryMax:    data.SalaryMax,
			JobType:      model.JobType(data.JobType),
			ProcessTime:  model.ProcessTime(data.ProcessTime),
			IsUrgent:     data.IsUrgent,
			IsActive:     true,
			Description:  data.Description,
			Requirements: data.Requirements,
		}
		if err := db.Create(&job).Error; err != nil {
			log.Error("insert job failed", "title", data.Title, "err", err)
			continue
		}
		inserted++
	}
	log.Info("job catalog seeded", "inserted", inserted, "total", len(inputs))
	return inserted, nil
}
