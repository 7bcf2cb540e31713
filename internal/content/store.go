package content

import (
	"context"
	"fmt"

	fs "cloud.google.com/go/firestore"

	pfs "github.com/moradabadnews/web/internal/platform/firestore"
)

// Store is the read surface of the document database consumed by the
// rendering pipeline and the search index.
type Store interface {
	// GetArticleByID fetches one article by document ID. Returns ErrNotFound
	// when the document is absent.
	GetArticleByID(ctx context.Context, id string) (*Article, error)
	// ListPublishedArticles returns every publishable article.
	ListPublishedArticles(ctx context.Context) ([]*Article, error)
	// GetCategory fetches a category record by slug. Returns ErrNotFound
	// when absent.
	GetCategory(ctx context.Context, slug string) (*Category, error)
}

// articleDoc mirrors the Firestore document shape. Timestamp fields decode
// as any because authored documents carry either native timestamps or
// ISO strings.
type articleDoc struct {
	Title           string   `firestore:"title"`
	Slug            string   `firestore:"slug"`
	Summary         string   `firestore:"summary"`
	Excerpt         string   `firestore:"excerpt"`
	Content         string   `firestore:"content"`
	Format          string   `firestore:"format"`
	Image           string   `firestore:"image"`
	Author          string   `firestore:"author"`
	PublishedAt     any      `firestore:"publishedAt"`
	ModifiedAt      any      `firestore:"modifiedAt"`
	Category        string   `firestore:"category"`
	Tags            []string `firestore:"tags"`
	MetaTitle       string   `firestore:"metaTitle"`
	MetaDescription string   `firestore:"metaDescription"`
	MetaKeywords    string   `firestore:"metaKeywords"`
	OGImage         string   `firestore:"ogImage"`
	Status          string   `firestore:"status"`
}

type categoryDoc struct {
	Slug        string `firestore:"slug"`
	Name        string `firestore:"name"`
	Description string `firestore:"description"`
	Image       string `firestore:"image"`
}

// FirestoreStore reads articles and categories from Firestore.
type FirestoreStore struct {
	articles   *pfs.ReadRepository[articleDoc]
	categories *pfs.ReadRepository[categoryDoc]
}

// NewFirestoreStore constructs a store over the named collections.
func NewFirestoreStore(provider *pfs.Provider, articlesCollection, categoriesCollection string) *FirestoreStore {
	return &FirestoreStore{
		articles:   pfs.NewReadRepository[articleDoc](provider, articlesCollection, nil),
		categories: pfs.NewReadRepository[categoryDoc](provider, categoriesCollection, nil),
	}
}

// GetArticleByID implements Store.
func (s *FirestoreStore) GetArticleByID(ctx context.Context, id string) (*Article, error) {
	doc, err := s.articles.Get(ctx, id)
	if err != nil {
		if pfs.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("content: get article %s: %w", id, err)
	}
	return articleFromDoc(doc.ID, doc.Data), nil
}

// ListPublishedArticles implements Store. Publishability is filtered client
// side because legacy documents carry no status field at all, which a
// Firestore where-clause cannot match.
func (s *FirestoreStore) ListPublishedArticles(ctx context.Context) ([]*Article, error) {
	docs, err := s.articles.Query(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("content: list articles: %w", err)
	}
	articles := make([]*Article, 0, len(docs))
	for _, doc := range docs {
		a := articleFromDoc(doc.ID, doc.Data)
		if a.Publishable() {
			articles = append(articles, a)
		}
	}
	return articles, nil
}

// GetCategory implements Store. The slug doubles as the document ID; when
// that misses, the slug field is queried.
func (s *FirestoreStore) GetCategory(ctx context.Context, slug string) (*Category, error) {
	doc, err := s.categories.Get(ctx, slug)
	if err == nil {
		return categoryFromDoc(doc.ID, doc.Data), nil
	}
	if !pfs.IsNotFound(err) {
		return nil, fmt.Errorf("content: get category %s: %w", slug, err)
	}

	docs, err := s.categories.Query(ctx, func(q fs.Query) fs.Query {
		return q.Where("slug", "==", slug).Limit(1)
	})
	if err != nil {
		return nil, fmt.Errorf("content: query category %s: %w", slug, err)
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return categoryFromDoc(docs[0].ID, docs[0].Data), nil
}

func articleFromDoc(id string, d articleDoc) *Article {
	return &Article{
		ID:              id,
		Title:           d.Title,
		Slug:            d.Slug,
		Summary:         d.Summary,
		Excerpt:         d.Excerpt,
		Content:         d.Content,
		Format:          d.Format,
		Image:           d.Image,
		Author:          d.Author,
		PublishedAt:     NormalizeTime(d.PublishedAt),
		ModifiedAt:      NormalizeTime(d.ModifiedAt),
		Category:        d.Category,
		Tags:            d.Tags,
		MetaTitle:       d.MetaTitle,
		MetaDescription: d.MetaDescription,
		MetaKeywords:    d.MetaKeywords,
		OGImage:         d.OGImage,
		Status:          d.Status,
	}
}

func categoryFromDoc(id string, d categoryDoc) *Category {
	slug := d.Slug
	if slug == "" {
		slug = id
	}
	return &Category{
		Slug:        slug,
		Name:        d.Name,
		Description: d.Description,
		Image:       d.Image,
	}
}
