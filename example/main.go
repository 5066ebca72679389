//go:build strenum

package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/sublee/strenum"
	"github.com/sublee/strenum/pkg/strenumerrors"
)

var snake = strenum.Module(strenum.ValueToSnake(), strenum.ValueToLower())

// JobStatus is the progress of a job.
var JobStatus = strenum.Enum[uint8](snake,
	strenum.VariantName("Todo"),
	strenum.VariantName("InProgress"),
	strenum.Variant("Done", "finished"),
)

// Job is a unit of work.
type Job struct {
	ID     int64
	Status JobStatus
}

var jobs = []Job{
	{ID: 1, Status: JobStatusTodo},
	{ID: 2, Status: JobStatusInProgress},
	{ID: 3, Status: JobStatusDone},
}

type jobView struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// listJobs serves GET /jobs?status=in_progress.
func listJobs(c echo.Context) error {
	filter := c.QueryParam("status")

	var status JobStatus
	if filter != "" {
		var err error
		status, err = ParseJobStatus(filter)

		var parseErr *strenumerrors.ParseError
		if errors.As(err, &parseErr) {
			return echo.NewHTTPError(http.StatusBadRequest, parseErr.Error())
		}
	}

	views := []jobView{}
	for _, job := range jobs {
		if filter != "" && job.Status != status {
			continue
		}
		views = append(views, jobView{ID: job.ID, Status: job.Status.Str()})
	}
	return c.JSON(http.StatusOK, views)
}

// getJob serves GET /jobs/:id in the protobuf JSON mapping.
func getJob(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	for _, job := range jobs {
		if job.ID != id {
			continue
		}

		msg, err := structpb.NewStruct(map[string]any{
			"id":     job.ID,
			"status": job.Status.Str(),
		})
		if err != nil {
			return err
		}

		b, err := protojson.Marshal(msg)
		if err != nil {
			return err
		}
		return c.JSONBlob(http.StatusOK, b)
	}
	return echo.NewHTTPError(http.StatusNotFound)
}

// openAPI describes the API. The status parameter enumerates the strings of
// JobStatus.
func openAPI() *openapi3.T {
	var statuses []any
	for _, s := range JobStatusValues() {
		statuses = append(statuses, s.Str())
	}

	status := openapi3.NewQueryParameter("status").
		WithSchema(openapi3.NewStringSchema().WithEnum(statuses...))

	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info:    &openapi3.Info{Title: "strenum example", Version: "1.0.0"},
		Paths: openapi3.NewPaths(openapi3.WithPath("/jobs", &openapi3.PathItem{
			Get: &openapi3.Operation{
				Parameters: openapi3.Parameters{{Value: status}},
				Responses: openapi3.NewResponses(openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{
					Value: openapi3.NewResponse().WithDescription("jobs"),
				})),
			},
		})),
	}
}

func main() {
	e := echo.New()
	e.GET("/jobs", listJobs)
	e.GET("/jobs/:id", getJob)
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, openAPI())
	})
	e.Logger.Fatal(e.Start(":8080"))
}
