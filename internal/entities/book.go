package entities

// AddedDateLayout is the timestamp format stored in Book.AddedDate.
const AddedDateLayout = "2006-01-02 15:04:05"

// Genres is the fixed list offered by the shell when adding a book.
// The column itself stores free text, so imported catalogs may carry
// genres outside this list.
var Genres = []string{
	"Fiction", "Non-Fiction", "Science Fiction", "Fantasy",
	"Mystery", "AI", "Coding", "Biography",
	"History", "Self-Help", "Poetry", "Science",
	"Philosophy", "Religion", "Art", "Other",
}

// Book is a single catalog entry.
//
// AddedDate is stamped once when the book is created and never updated;
// PublicationYear of 0 means the year is unknown.
type Book struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Title           string `gorm:"index;size:512;not null" json:"title"`
	Author          string `gorm:"index;size:256;not null" json:"author"`
	PublicationYear int    `json:"publication_year"`
	Genre           string `gorm:"size:100" json:"genre"`
	ReadStatus      bool   `json:"read_status"`
	AddedDate       string `gorm:"size:32" json:"added_date"`
}

func (Book) TableName() string {
	return "books"
}

// StatusLabel renders the read status the way the shell displays it.
func (b Book) StatusLabel() string {
	if b.ReadStatus {
		return "Read"
	}
	return "Unread"
}
