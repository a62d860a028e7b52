package core

// SeedCatalog is reference data loaded out of band: categories and lesson quizzes.
type SeedCatalog struct {
	Categories []SeedCategory `yaml:"categories"`
	Quizzes    []SeedQuiz     `yaml:"quizzes"`
}

// SeedCategory names a category to ensure.
type SeedCategory struct {
	Name string `yaml:"name"`
}

// SeedQuiz attaches a quiz to the lesson identified by course and lesson slug.
type SeedQuiz struct {
	Course   string `yaml:"course"`
	Lesson   string `yaml:"lesson"`
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
	Op1      string `yaml:"op1"`
	Op2      string `yaml:"op2"`
	Op3      string `yaml:"op3"`
}

// SeedReport summarises what a seed run changed.
type SeedReport struct {
	CategoriesCreated int
	CategoriesSkipped int
	QuizzesCreated    int
	QuizzesSkipped    int
}
