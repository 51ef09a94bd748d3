package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"employee-portal/internal/dto"
	"employee-portal/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProjectService() (ProjectServiceInterface, *fakeProjectRepo) {
	projects := newFakeProjectRepo()
	projects.projects[10] = &entities.Project{Pnumber: 10, Pname: "Computerization", Dname: "Administration"}
	return NewProjectService(projects, newFakeEmployeeRepo(), zap.NewNop()), projects
}

func TestAssignHours_Accumulates(t *testing.T) {
	svc, repo := newProjectService()
	ctx := context.Background()

	pno, err := svc.AssignHours(ctx, "10", dto.AssignHoursDTO{Essn: "123456789", Hours: "5"})
	require.NoError(t, err)
	assert.Equal(t, 10, pno)

	_, err = svc.AssignHours(ctx, "10", dto.AssignHoursDTO{Essn: "123456789", Hours: "2.5"})
	require.NoError(t, err)
	assert.Equal(t, 7.5, repo.hours["123456789/10"])
}

func TestAssignHours_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		payload dto.AssignHoursDTO
		message string
	}{
		{"missing employee", dto.AssignHoursDTO{Hours: "3"}, "Missing data"},
		{"missing hours", dto.AssignHoursDTO{Essn: "123456789"}, "Missing data"},
		{"not a number", dto.AssignHoursDTO{Essn: "123456789", Hours: "abc"}, "Invalid hours"},
		{"nan", dto.AssignHoursDTO{Essn: "123456789", Hours: "NaN"}, "Invalid hours"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo := newProjectService()

			_, err := svc.AssignHours(context.Background(), "10", tc.payload)
			code, message := httpCode(t, err)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, tc.message, message)
			assert.Empty(t, repo.hours)
		})
	}
}

func TestAssignHours_DatabaseFailure(t *testing.T) {
	svc, repo := newProjectService()
	repo.addErr = errors.New("connection reset")

	_, err := svc.AssignHours(context.Background(), "10", dto.AssignHoursDTO{Essn: "123456789", Hours: "1"})
	code, message := httpCode(t, err)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "An error occurred while assigning hours", message)
}

func TestGetProjectDetails(t *testing.T) {
	svc, _ := newProjectService()
	ctx := context.Background()

	page, err := svc.GetProjectDetails(ctx, "10")
	require.NoError(t, err)
	assert.Equal(t, "Computerization", page.Project.Pname)

	for _, id := range []string{"99", "abc"} {
		_, err = svc.GetProjectDetails(ctx, id)
		code, message := httpCode(t, err)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "Project not found", message)
	}
}

func TestListProjects_Defaults(t *testing.T) {
	svc, _ := newProjectService()

	page, err := svc.ListProjects(context.Background(), dto.ProjectFilter{})
	require.NoError(t, err)
	assert.Equal(t, "pname", page.CurrentSort)
	assert.Equal(t, "asc", page.CurrentOrder)
	assert.Len(t, page.Projects, 1)
}
