// Package export turns a validated item snapshot into a CSV file. It is a
// pure synchronous transform: callers hand it the records and a
// destination, and any failure comes back as a descriptive error.
package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"menubuilder/internal/domain/entity"

	"github.com/pkg/errors"
)

var header = []string{
	"id",
	"name",
	"item_group",
	"product_class",
	"revenue_category",
	"report_category",
	"tax_group",
	"security_level",
	"choice_groups",
	"printer_logicals",
	"price_levels",
	"prices",
}

// WriteItems writes the items in the order given. Item groups are optional;
// when present they resolve group references to names, otherwise the raw ID
// is written.
func WriteItems(w io.Writer, items []entity.Item, groups map[entity.EntityID]entity.ItemGroup) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(header); err != nil {
		return errors.Wrap(err, "write csv header")
	}

	for _, item := range items {
		if err := csvWriter.Write(itemRow(item, groups)); err != nil {
			return errors.Wrapf(err, "write item %d", item.ID)
		}
	}

	csvWriter.Flush()

	return errors.Wrap(csvWriter.Error(), "flush csv")
}

// ExportItems writes the items to a file at path, creating or truncating it.
func ExportItems(path string, items []entity.Item, groups map[entity.EntityID]entity.ItemGroup) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}

	if err := WriteItems(file, items, groups); err != nil {
		file.Close()

		return err
	}

	return errors.Wrapf(file.Close(), "close %s", path)
}

func itemRow(item entity.Item, groups map[entity.EntityID]entity.ItemGroup) []string {
	return []string{
		formatID(item.ID),
		item.Name,
		formatGroup(item.ItemGroup, groups),
		formatScalar(item.ProductClass),
		formatScalar(item.RevenueCategory),
		formatScalar(item.ReportCategory),
		formatScalar(item.TaxGroup),
		formatScalar(item.SecurityLevel),
		formatList(item.ChoiceGroups),
		formatList(item.PrinterLogicals),
		formatList(item.PriceLevels),
		formatPrices(item.ItemPrices),
	}
}

func formatID(id entity.EntityID) string {
	return strconv.FormatInt(int64(id), 10)
}

func formatScalar(id *entity.EntityID) string {
	if id == nil {
		return ""
	}

	return formatID(*id)
}

// formatGroup prefers the group's name; a dangling or unresolvable
// reference falls back to the raw ID so the export never drops data.
func formatGroup(id *entity.EntityID, groups map[entity.EntityID]entity.ItemGroup) string {
	if id == nil {
		return ""
	}
	if group, ok := groups[*id]; ok {
		return group.Name
	}

	return formatID(*id)
}

func formatList(ids []entity.EntityID) string {
	if len(ids) == 0 {
		return ""
	}

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, formatID(id))
	}

	return strings.Join(parts, ";")
}

func formatPrices(prices []entity.ItemPrice) string {
	if len(prices) == 0 {
		return ""
	}

	parts := make([]string, 0, len(prices))
	for _, price := range prices {
		parts = append(parts, formatID(price.PriceLevelID)+":"+price.Price.String())
	}

	return strings.Join(parts, ";")
}
