package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/mateusfonseca/dorsetMusicCollection/internal/db"
	"github.com/mateusfonseca/dorsetMusicCollection/internal/models"
	"github.com/mateusfonseca/dorsetMusicCollection/internal/services"
	"github.com/mateusfonseca/dorsetMusicCollection/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const pollIndexCacheKey = "polls:index"

type PollHandler struct {
	catalog services.Catalog
	params  *PollParams
}

func NewPollHandler(catalog services.Catalog, params *PollParams) *PollHandler {
	return &PollHandler{
		catalog: catalog,
		params:  params,
	}
}

// Index lists all polls, newest first. The question list is cached briefly;
// only the list is cached, never the render data, which carries per-request
// state such as the current user.
func (h *PollHandler) Index(c *gin.Context) {
	var questions []models.Question
	if cached, ok := utils.GetCache().Get(pollIndexCacheKey).([]models.Question); ok {
		questions = cached
	} else {
		db.DB.Order("pub_date DESC").Find(&questions)
		utils.GetCache().Set(pollIndexCacheKey, questions, 1*time.Minute)
	}

	Render(c, http.StatusOK, "polls/index.html", gin.H{
		"Questions": questions,
		"Title":     "Polls",
	})
}

// Show routes GET /polls/:id. The create form shares the parameter slot with
// the detail page because gin cannot register a static segment next to a
// wildcard one.
func (h *PollHandler) Show(c *gin.Context) {
	if c.Param("id") == "create" {
		h.ShowCreate(c)
		return
	}
	h.detail(c, "polls/detail.html")
}

// Results shows the post-vote destination for a poll.
func (h *PollHandler) Results(c *gin.Context) {
	h.detail(c, "polls/results.html")
}

func (h *PollHandler) detail(c *gin.Context, name string) {
	question, ok := h.findQuestion(c)
	if !ok {
		return
	}
	Render(c, http.StatusOK, name, gin.H{
		"Question": question,
		"Title":    question.Text,
	})
}

func (h *PollHandler) findQuestion(c *gin.Context) (*models.Question, bool) {
	id := utils.StringToInt(c.Param("id"))
	if id <= 0 {
		RenderError(c, http.StatusNotFound, "Poll not found")
		return nil, false
	}

	var question models.Question
	if err := db.DB.Preload("Choices").First(&question, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Poll not found")
		return nil, false
	}
	return &question, true
}

// Vote records one vote for a choice belonging to the given question, then
// redirects to the results page. A missing or foreign choice id re-renders
// the detail page with an inline message rather than failing the request.
func (h *PollHandler) Vote(c *gin.Context) {
	question, ok := h.findQuestion(c)
	if !ok {
		return
	}

	choiceID := c.PostForm("choice")
	var choice models.Choice
	err := db.DB.Where("id = ? AND question_id = ?", choiceID, question.ID).First(&choice).Error
	if choiceID == "" || err != nil {
		Render(c, http.StatusOK, "polls/detail.html", gin.H{
			"Question":     question,
			"Title":        question.Text,
			"ErrorMessage": "You didn't select a choice.",
		})
		return
	}

	// Increment on the DB side so concurrent votes cannot lose updates.
	if err := db.DB.Model(&choice).
		UpdateColumn("votes", gorm.Expr("votes + ?", 1)).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/polls/%d/results", question.ID))
}

// ShowCreate renders the creation form parameters. Login is enforced here
// rather than by route middleware because the path is dispatched from Show.
func (h *PollHandler) ShowCreate(c *gin.Context) {
	if user := currentUserOrLogin(c); user == nil {
		return
	}

	Render(c, http.StatusOK, "polls/create.html", gin.H{
		"Title":  "Create a poll",
		"Genres": h.params.Genres,
		"Years":  h.params.Years,
	})
}

// Create queries the catalog for the selected genre and year, keeps the ten
// most popular distinct-artist releases and persists them as a new poll.
func (h *PollHandler) Create(c *gin.Context) {
	if user := currentUserOrLogin(c); user == nil {
		return
	}

	genre := c.PostForm("genre")
	year := utils.StringToInt(c.PostForm("year"))
	if !h.params.HasGenre(genre) || year == 0 {
		Render(c, http.StatusBadRequest, "polls/create.html", gin.H{
			"Title":  "Create a poll",
			"Genres": h.params.Genres,
			"Years":  h.params.Years,
			"Error":  "Pick a genre and a year from the lists.",
		})
		return
	}

	releases, err := h.catalog.Search(genre, year)
	if err != nil {
		log.Printf("catalog search failed (genre=%q year=%d): %v", genre, year, err)
		RenderError(c, http.StatusBadGateway, "The music catalog is unavailable, try again later.")
		return
	}

	if len(releases) == 0 {
		Render(c, http.StatusOK, "polls/no_matches.html", gin.H{
			"Title": "No matches",
			"Genre": genre,
			"Year":  year,
		})
		return
	}

	top := services.TopReleasesByArtist(releases, 10)

	question := models.Question{
		Genre:   genre,
		Year:    year,
		Text:    fmt.Sprintf("What is the best %s album of %d?", genre, year),
		PubDate: time.Now(),
		Choices: make([]models.Choice, 0, len(top)),
	}
	for _, release := range top {
		question.Choices = append(question.Choices, models.Choice{
			Image:   release.CoverImage,
			Title:   services.AlbumOf(release.Title),
			Artist:  services.ArtistOf(release.Title),
			Year:    release.Year,
			Genres:  strings.Join(release.Styles, "/"),
			Country: release.Country,
			URL:     release.URL,
		})
	}

	// One Create persists the question and its choices in a single transaction.
	if err := db.DB.Create(&question).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	utils.GetCache().Delete(pollIndexCacheKey)

	c.Redirect(http.StatusFound, fmt.Sprintf("/polls/%d", question.ID))
}

// Submit routes POST /polls/:id; only the create slot accepts posts here.
func (h *PollHandler) Submit(c *gin.Context) {
	if c.Param("id") == "create" {
		h.Create(c)
		return
	}
	RenderError(c, http.StatusNotFound, "Poll not found")
}
