package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/hootacademy/pkg/models"
)

// Default models. The TTS model is fixed: it is the only one that
// returns raw PCM audio.
const (
	defaultModel = "gemini-3-pro-preview"
	ttsModel     = "gemini-2.5-flash-preview-tts"
	ttsVoice     = "Kore"
)

// teacherPersona is the system instruction for every generation call
const teacherPersona = `You are Professor Hoot, a friendly, encouraging, and wise owl who teaches 5th-grade math to students in Texas.
Your tone is playful, clear, and age-appropriate (10-11 years old).
You love using bird puns occasionally (e.g., "Owl bet you can do this!", "Whooo's ready to learn?").
Explain concepts simply, step-by-step.`

// Client talks to the Gemini generateContent API. Calls are single-shot
// with no retry; failures are returned to the caller, which degrades to
// fallback content.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient creates a new Gemini client
func NewClient() (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		model:   model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

// InlineData carries binary payloads (audio) as base64
type InlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

// Part is one piece of a content block
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// Content is a role-tagged sequence of parts
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Schema constrains structured JSON responses
type Schema struct {
	Type       string             `json:"type,omitempty"`
	Enum       []string           `json:"enum,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
	Nullable   bool               `json:"nullable,omitempty"`
}

// VoiceConfig selects a prebuilt TTS voice
type VoiceConfig struct {
	PrebuiltVoiceConfig struct {
		VoiceName string `json:"voiceName"`
	} `json:"prebuiltVoiceConfig"`
}

// SpeechConfig configures audio responses
type SpeechConfig struct {
	VoiceConfig VoiceConfig `json:"voiceConfig"`
}

// GenerationConfig tunes a generateContent call
type GenerationConfig struct {
	ResponseMimeType   string        `json:"responseMimeType,omitempty"`
	ResponseSchema     *Schema       `json:"responseSchema,omitempty"`
	ResponseModalities []string      `json:"responseModalities,omitempty"`
	SpeechConfig       *SpeechConfig `json:"speechConfig,omitempty"`
}

// generateRequest is the generateContent request body
type generateRequest struct {
	Contents          []Content         `json:"contents"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

// generateResponse is the generateContent response body
type generateResponse struct {
	Candidates []struct {
		Content Content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// generate performs one generateContent call against the given model
func (c *Client) generate(ctx context.Context, model string, request generateRequest) (*generateResponse, error) {
	requestData, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %v", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(requestData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	var response generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %v", err)
	}

	if response.Error != nil {
		return nil, fmt.Errorf("API error: %s", response.Error.Message)
	}
	if len(response.Candidates) == 0 {
		return nil, fmt.Errorf("no response candidates returned")
	}
	return &response, nil
}

// firstText returns the first text part of the first candidate
func (r *generateResponse) firstText() string {
	for _, part := range r.Candidates[0].Content.Parts {
		if part.Text != "" {
			return strings.TrimSpace(part.Text)
		}
	}
	return ""
}

// GenerateLesson asks for a 3-slide lesson on a standard. The caller
// substitutes FallbackLesson on error so rendering never sees an empty
// slide list.
func (c *Client) GenerateLesson(ctx context.Context, standard models.Standard) (models.LessonContent, error) {
	prompt := fmt.Sprintf(`Create a 3-slide lesson for the Texas standard: %s - %s.

Structure:
1. Introduction: Hook the student with a real-world example.
2. Explanation: Step-by-step how-to.
3. Example: Walk through a specific problem.

Output pure JSON following this schema. Visual types can be 'chart', 'geometry', 'text' or 'calculation'.
If 'chart', provide 'visualData' suitable for a bar chart (e.g., [{name: 'A', value: 10}]).`,
		standard.Code, standard.Description)

	request := generateRequest{
		Contents:          []Content{{Role: "user", Parts: []Part{{Text: prompt}}}},
		SystemInstruction: &Content{Parts: []Part{{Text: teacherPersona}}},
		GenerationConfig: &GenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   lessonSchema(),
		},
	}

	response, err := c.generate(ctx, c.model, request)
	if err != nil {
		return models.LessonContent{}, err
	}

	text := response.firstText()
	if text == "" {
		return models.LessonContent{}, fmt.Errorf("empty lesson response")
	}

	var lesson models.LessonContent
	if err := json.Unmarshal([]byte(text), &lesson); err != nil {
		return models.LessonContent{}, fmt.Errorf("failed to parse lesson JSON: %v", err)
	}
	if len(lesson.Slides) == 0 {
		return models.LessonContent{}, fmt.Errorf("lesson has no slides")
	}
	return lesson, nil
}

// FallbackLesson is the single-slide lesson shown when generation fails
func FallbackLesson() models.LessonContent {
	return models.LessonContent{
		Slides: []models.Slide{
			{
				Title:      "Oops!",
				Content:    "Professor Hoot is having trouble finding his notes. Please try again in a moment.",
				VisualType: models.VisualText,
			},
		},
	}
}

// GenerateQuiz asks for 3 multiple-choice questions on a standard.
// Questions missing an id get one assigned. An error means the caller
// should proceed with an empty quiz.
func (c *Client) GenerateQuiz(ctx context.Context, standard models.Standard) (models.QuizContent, error) {
	prompt := fmt.Sprintf(`Create a quiz with 3 multiple-choice questions for 5th grade math standard: %s.
Questions should be progressively harder.
Output JSON.`, standard.Code)

	request := generateRequest{
		Contents:          []Content{{Role: "user", Parts: []Part{{Text: prompt}}}},
		SystemInstruction: &Content{Parts: []Part{{Text: teacherPersona}}},
		GenerationConfig: &GenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   quizSchema(),
		},
	}

	response, err := c.generate(ctx, c.model, request)
	if err != nil {
		return models.QuizContent{}, err
	}

	text := response.firstText()
	if text == "" {
		return models.QuizContent{}, fmt.Errorf("empty quiz response")
	}

	var quiz models.QuizContent
	if err := json.Unmarshal([]byte(text), &quiz); err != nil {
		return models.QuizContent{}, fmt.Errorf("failed to parse quiz JSON: %v", err)
	}

	for i := range quiz.Questions {
		if quiz.Questions[i].ID == "" {
			quiz.Questions[i].ID = uuid.NewString()
		}
	}
	return quiz, nil
}

// GenerateSpeech synthesizes text into base64 16-bit PCM mono audio at
// 24kHz. An empty result means "skip playback", not an error.
func (c *Client) GenerateSpeech(ctx context.Context, text string) (string, error) {
	request := generateRequest{
		Contents: []Content{{Parts: []Part{{Text: text}}}},
		GenerationConfig: &GenerationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig:       speechConfig(ttsVoice),
		},
	}

	response, err := c.generate(ctx, ttsModel, request)
	if err != nil {
		return "", err
	}

	for _, part := range response.Candidates[0].Content.Parts {
		if part.InlineData != nil && part.InlineData.Data != "" {
			return part.InlineData.Data, nil
		}
	}
	return "", nil
}

func speechConfig(voice string) *SpeechConfig {
	sc := &SpeechConfig{}
	sc.VoiceConfig.PrebuiltVoiceConfig.VoiceName = voice
	return sc
}

func lessonSchema() *Schema {
	return &Schema{
		Type: "OBJECT",
		Properties: map[string]*Schema{
			"slides": {
				Type: "ARRAY",
				Items: &Schema{
					Type: "OBJECT",
					Properties: map[string]*Schema{
						"title":      {Type: "STRING"},
						"content":    {Type: "STRING"},
						"visualType": {Type: "STRING", Enum: []string{"chart", "text", "calculation", "geometry"}},
						"visualData": {
							Type: "ARRAY",
							Items: &Schema{
								Type: "OBJECT",
								Properties: map[string]*Schema{
									"name":  {Type: "STRING"},
									"value": {Type: "NUMBER"},
								},
							},
							Nullable: true,
						},
					},
					Required: []string{"title", "content", "visualType"},
				},
			},
		},
	}
}

func quizSchema() *Schema {
	return &Schema{
		Type: "OBJECT",
		Properties: map[string]*Schema{
			"questions": {
				Type: "ARRAY",
				Items: &Schema{
					Type: "OBJECT",
					Properties: map[string]*Schema{
						"id":           {Type: "STRING"},
						"question":     {Type: "STRING"},
						"options":      {Type: "ARRAY", Items: &Schema{Type: "STRING"}},
						"correctIndex": {Type: "INTEGER"},
						"explanation":  {Type: "STRING"},
					},
					Required: []string{"id", "question", "options", "correctIndex", "explanation"},
				},
			},
		},
	}
}
