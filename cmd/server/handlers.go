package main

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func handleListTimetables(ctx *gin.Context) {
	files, err := os.ReadDir(cfg.DataDir + "/generated/")
	if err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}

	allIDs := []string{}
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		id, ok := strings.CutSuffix(file.Name(), "-timetable.csv")
		if ok {
			allIDs = append(allIDs, id)
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"timetableIds": allIDs,
	})
}

func handleGetTimetable(ctx *gin.Context) {
	id := ctx.Param("id")
	base := cfg.DataDir + "/generated/" + id

	content, err := os.ReadFile(base + "-timetable.csv")
	if err != nil {
		ctx.Status(http.StatusNotFound)
		return
	}
	report, _ := os.ReadFile(base + "-report.txt")

	ctx.JSON(http.StatusOK, gin.H{
		"data":   string(content),
		"report": string(report),
	})
}

func handleGenerateTimetable(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}

	if len(form.File["courses"]) == 0 || len(form.File["faculty"]) == 0 || len(form.File["rooms"]) == 0 {
		ctx.Status(http.StatusBadRequest)
		return
	}
	coursesFile := form.File["courses"][0]
	facultyFile := form.File["faculty"][0]
	roomsFile := form.File["rooms"][0]

	id := uuid.NewString()
	coursesPath := cfg.DataDir + "/" + id + "-" + coursesFile.Filename
	facultyPath := cfg.DataDir + "/" + id + "-" + facultyFile.Filename
	roomsPath := cfg.DataDir + "/" + id + "-" + roomsFile.Filename
	if err := ctx.SaveUploadedFile(coursesFile, coursesPath); err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}
	if err := ctx.SaveUploadedFile(facultyFile, facultyPath); err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}
	if err := ctx.SaveUploadedFile(roomsFile, roomsPath); err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}

	exportPath := cfg.DataDir + "/generated/" + id + "-timetable.csv"
	go createAndExportTimetable(coursesPath, facultyPath, roomsPath, exportPath)

	ctx.JSON(http.StatusOK, gin.H{
		"id": id,
	})
}
