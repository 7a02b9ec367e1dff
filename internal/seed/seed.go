package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/schoolapi/internal/app/models"
	appRepos "github.com/yigit/schoolapi/internal/app/repositories"
	"github.com/yigit/schoolapi/internal/pkg/apperrors"
	"github.com/yigit/schoolapi/internal/pkg/helpers"
)

const (
	demoTeacherName = "Demo Teacher"
	demoCourseCode  = "DEMO101"
	demoStudentID   = "DEMO-0001"
)

// CreateDefaultData creates a demo teacher, course and student if they don't exist.
// Running it twice leaves a single copy of each.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Teacher/Course/Student)...")
	var finalErr error

	teacherID, err := ensureTeacher(ctx, repos.TeacherRepository)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating demo teacher")
		finalErr = errors.Join(finalErr, err)
	}

	if teacherID > 0 {
		if err := ensureCourse(ctx, repos.CourseRepository, teacherID); err != nil {
			lgr.Error().Err(err).Msg("Error creating demo course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if err := ensureStudent(ctx, repos.StudentRepository); err != nil {
		lgr.Error().Err(err).Msg("Error creating demo student")
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check/creation complete.")
	}
	return finalErr
}

func ensureTeacher(ctx context.Context, repo *appRepos.TeacherRepository) (int64, error) {
	now := helpers.NowUTC()
	department := "General Studies"
	created, err := repo.Create(ctx, &appModels.Teacher{
		FirstName:  "Demo",
		LastName:   "Teacher",
		Name:       demoTeacherName,
		Department: &department,
		Credits:    3,
		HireDate:   &now,
	})
	if err == nil {
		return created.ID, nil
	}
	if !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
		return 0, err
	}

	teachers, err := repo.List(ctx)
	if err != nil {
		return 0, err
	}
	for _, t := range teachers {
		if t.Name == demoTeacherName {
			return t.ID, nil
		}
	}
	return 0, nil
}

// ensureCourse has no unique key to lean on, so it looks for the code first
func ensureCourse(ctx context.Context, repo *appRepos.CourseRepository, teacherID int64) error {
	courses, err := repo.List(ctx)
	if err != nil {
		return err
	}
	for _, c := range courses {
		if c.Code == demoCourseCode {
			return nil
		}
	}

	_, err = repo.Create(ctx, &appModels.Course{
		Code:      demoCourseCode,
		Name:      "Introduction to the School API",
		Credits:   3,
		TeacherID: teacherID,
	})
	return err
}

func ensureStudent(ctx context.Context, repo *appRepos.StudentRepository) error {
	now := helpers.NowUTC()
	_, err := repo.Create(ctx, &appModels.Student{
		FirstName:      "Demo",
		LastName:       "Student",
		StudentID:      demoStudentID,
		Email:          "demo.student@example.com",
		EnrollmentDate: &now,
	})
	if err != nil && !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
		return err
	}
	return nil
}
