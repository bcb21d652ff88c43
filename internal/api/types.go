package api

// Wire types for the WinnerWay backend. The analysis payload is treated as
// opaque beyond existence checks: the client renders what the backend
// returns and never validates its internal consistency.

// UploadResult is the response from POST /api/videos/upload.
type UploadResult struct {
	VideoID   string   `json:"video_id"`
	Filename  string   `json:"filename"`
	Status    string   `json:"status"`
	UserInfo  UserInfo `json:"user_info"`
	AuthToken string   `json:"auth_token,omitempty"`
}

// UserInfo describes the account the upload was attributed to.
type UserInfo struct {
	Email     string `json:"email"`
	IsNewUser bool   `json:"is_new_user"`
}

// AnalysisResponse is the full analysis payload for one uploaded video.
type AnalysisResponse struct {
	VideoID       string   `json:"video_id"`
	Status        string   `json:"status"`
	ShotsDetected int      `json:"shots_detected"`
	Analysis      Analysis `json:"analysis"`
}

// Analysis is the body of an analysis response.
type Analysis struct {
	UserShot           *UserShot        `json:"user_shot,omitempty"`
	BestMatch          *ProMatch        `json:"best_match,omitempty"`
	AllMatches         []ProMatch       `json:"all_matches,omitempty"`
	Scores             *ScoreBreakdown  `json:"analysis,omitempty"`
	Recommendations    *Recommendations `json:"recommendations,omitempty"`
	AIAnalysis         *AIAnalysis      `json:"ai_analysis,omitempty"`
	PersonalizedDrills []Drill          `json:"personalized_drills,omitempty"`
}

// UserShot describes the shot the backend detected in the user's video.
type UserShot struct {
	File       string `json:"file"`
	Gender     string `json:"gender"`
	Handedness string `json:"handedness"`
	ShotType   string `json:"shot_type"`
}

// ProMatch is one professional-player comparison.
type ProMatch struct {
	ProName           string  `json:"pro_name"`
	OverallSimilarity float64 `json:"overall_similarity"`
	File              string  `json:"file,omitempty"`
}

// ScoreBreakdown is the structured technique feedback.
type ScoreBreakdown struct {
	OverallRating        string         `json:"overall_rating"`
	SimilarityPercentage float64        `json:"similarity_percentage"`
	MostSimilarPro       string         `json:"most_similar_pro"`
	Strengths            []FeedbackItem `json:"strengths,omitempty"`
	AreasForImprovement  []FeedbackItem `json:"areas_for_improvement,omitempty"`
}

// FeedbackItem is one scored aspect of the user's technique.
type FeedbackItem struct {
	Aspect  string  `json:"aspect"`
	Score   float64 `json:"score"`
	Comment string  `json:"comment"`
}

// Recommendations are the flat strength/improvement summaries.
type Recommendations struct {
	Strengths    []string `json:"strengths,omitempty"`
	Improvements []string `json:"improvements,omitempty"`
}

// AIAnalysis wraps the free-text AI assessment.
type AIAnalysis struct {
	DetailedFeedback string        `json:"detailed_feedback,omitempty"`
	TechnicalPoints  []string      `json:"technical_points,omitempty"`
	AIAnalysis       *AIAssessment `json:"ai_analysis,omitempty"`
}

// AIAssessment is the generated coaching narrative.
type AIAssessment struct {
	OverallAssessment       string   `json:"overall_assessment"`
	KeyObservations         []string `json:"key_observations,omitempty"`
	SpecificRecommendations []string `json:"specific_recommendations,omitempty"`
	FocusAreas              []string `json:"focus_areas,omitempty"`
}

// Drill is one personalized training drill.
type Drill struct {
	Title              string   `json:"title"`
	Objective          string   `json:"objective"`
	Description        string   `json:"description"`
	BiomechanicalFocus string   `json:"biomechanical_focus,omitempty"`
	Steps              []string `json:"steps"`
	CoachingCues       []string `json:"coaching_cues,omitempty"`
	Progression        string   `json:"progression"`
}
