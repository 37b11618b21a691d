// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RowArity is the number of columns in a collection export.
const RowArity = 13

// CollectionRow is one record of a collection export, in the export's
// column order: Catalog#, Artist, Title, Label, Format, Rating, Released,
// release_id, CollectionFolder, Date Added, Collection Media Condition,
// Collection Sleeve Condition, Collection Notes.
type CollectionRow struct {
	CatalogueNumber  string `json:"catalogue_number" yaml:"catalogue_number"`
	Artist           string `json:"artist" yaml:"artist"`
	Title            string `json:"title" yaml:"title"`
	Label            string `json:"label" yaml:"label"`
	Format           string `json:"format" yaml:"format"`
	Rating           string `json:"rating" yaml:"rating"`
	Released         string `json:"released" yaml:"released"`
	ReleaseID        string `json:"release_id" yaml:"release_id"`
	CollectionFolder string `json:"collection_folder" yaml:"collection_folder"`
	DateAdded        string `json:"date_added" yaml:"date_added"`
	MediaCondition   string `json:"media_condition" yaml:"media_condition"`
	SleeveCondition  string `json:"sleeve_condition" yaml:"sleeve_condition"`
	Notes            string `json:"notes" yaml:"notes"`

	// Line is the 1-based line of the record in the source file.
	Line int `json:"line" yaml:"line"`
}
