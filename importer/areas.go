package importer

import "sort"

// AreaGroup is one AreaCodeDesc with its unique AreaIds, sorted.
type AreaGroup struct {
	AreaCodeDesc string   `json:"area_code_desc"`
	Count        int      `json:"count"`
	AreaIds      []string `json:"area_ids"`
}

// GroupAreas groups unique AreaIds by AreaCodeDesc. Rows with either value
// blank are skipped; returns the number of rows that contributed. Groups are
// sorted by description, ids within a group sorted ascending.
func GroupAreas(t *Table) ([]*AreaGroup, int, error) {
	if err := t.RequireColumns("AreaId", "AreaCodeDesc"); err != nil {
		return nil, 0, err
	}

	idsByDesc := make(map[string]map[string]bool)
	processed := 0
	for _, row := range t.Rows {
		areaId := trimmed(row.Get("AreaId"))
		areaCodeDesc := trimmed(row.Get("AreaCodeDesc"))
		if areaId == "" || areaCodeDesc == "" {
			continue
		}
		if idsByDesc[areaCodeDesc] == nil {
			idsByDesc[areaCodeDesc] = make(map[string]bool)
		}
		idsByDesc[areaCodeDesc][areaId] = true
		processed++
	}

	groups := make([]*AreaGroup, 0, len(idsByDesc))
	for desc, ids := range idsByDesc {
		group := &AreaGroup{AreaCodeDesc: desc, Count: len(ids)}
		for id := range ids {
			group.AreaIds = append(group.AreaIds, id)
		}
		sort.Strings(group.AreaIds)
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].AreaCodeDesc < groups[j].AreaCodeDesc
	})
	return groups, processed, nil
}
