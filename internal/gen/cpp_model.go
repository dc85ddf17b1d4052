package gen

import (
	"strconv"
	"strings"

	"qt-binding-generator/internal/common"
	"qt-binding-generator/internal/config"
	"qt-binding-generator/internal/schema"
	"qt-binding-generator/primitive"
)

// writeCppModel renders the QAbstractItemModel overrides of a List or Tree.
func writeCppModel(c *code, o *schema.Object) {
	name := lc(o.Name)

	indexDecl, index := ", int", ", index.row()"
	if o.Kind == config.KindTree {
		indexDecl, index = ", quintptr", ", index.internalId()"
	}

	c.line("extern \"C\" {")

	for _, ip := range o.ItemProperties {
		base := name + "_data_" + lc(ip.Name)

		if ip.IsComplex() {
			c.line("    void %s(const %s::Private*%s, %s);", base, o.Name, indexDecl, cGetType(ip.Type))
		} else {
			c.line("    %s %s(const %s::Private*%s);", cItemType(ip), base, o.Name, indexDecl)
		}

		if !ip.Write {
			continue
		}

		set := "    bool " + name + "_set_data_" + lc(ip.Name)
		args := "(" + o.Name + "::Private*" + indexDecl

		switch ip.Type {
		case primitive.KindQString:
			c.line("%s%s, const ushort* s, int len);", set, args)
		case primitive.KindQByteArray:
			c.line("%s%s, const char* s, int len);", set, args)
		default:
			c.line("%s%s, %s);", set, args, ip.Type.CSetType())
		}

		if ip.Optional {
			c.line("%s_none%s);", set, args)
		}
	}

	c.line("    void %s_sort(%s::Private*, unsigned char column, Qt::SortOrder order = Qt::AscendingOrder);", name, o.Name)

	data := newModelData(o.Name, o.ColumnCount())
	if o.Kind == config.KindList {
		c.exec(cppListModelTemplate, data)
	} else {
		c.exec(cppTreeModelTemplate, data)
	}

	c.line("")
	c.line("void %s::sort(int column, Qt::SortOrder order)", o.Name)
	c.line("{")
	c.line("    %s_sort(m_d, column, order);", name)
	c.line("}")
	c.line("Qt::ItemFlags %s::flags(const QModelIndex &i) const", o.Name)
	c.line("{")
	c.line("    auto flags = QAbstractItemModel::flags(i);")

	for col := range o.ColumnCount() {
		if o.IsColumnWrite(col) {
			c.line("    if (i.column() == %d) {", col)
			c.line("        flags |= Qt::ItemIsEditable;")
			c.line("    }")
		}
	}

	c.line("    return flags;")
	c.line("}")
	c.line("")

	for _, ip := range o.ItemProperties {
		writeModelGetterSetter(c, index, ip, o)
	}

	writeModelData(c, o)

	c.exec(cppModelCommonTemplate, data)

	for _, ip := range o.ItemProperties {
		c.line("    names.insert(Qt::UserRole + %d, \"%s\");", ip.Index, ip.Name)
	}

	c.exec(cppHeaderDataTemplate, data)

	if o.ModelIsWritable() {
		writeModelSetData(c, o)
	}
}

func writeModelGetterSetter(c *code, index string, ip *schema.ItemProperty, o *schema.Object) {
	base := lc(o.Name) + "_data_" + lc(ip.Name)
	r := cppItemType(ip)

	if o.Kind == config.KindList {
		index = ", row"
		c.line("%s %s::%s(int row) const", r, o.Name, ip.Name)
	} else {
		c.line("%s %s::%s(const QModelIndex& index) const", r, o.Name, ip.Name)
	}

	c.line("{")

	switch {
	case ip.Type == primitive.KindQString:
		c.line("    QString s;")
		c.line("    %s(m_d%s, &s, %s);", base, index, copyCallback(ip.Type))
		c.line("    return s;")
	case ip.Type == primitive.KindQByteArray:
		c.line("    QByteArray b;")
		c.line("    %s(m_d%s, &b, %s);", base, index, copyCallback(ip.Type))
		c.line("    return b;")
	case ip.Optional:
		c.line("    QVariant v;")
		c.line("    v = %s(m_d%s);", base, index)
		c.line("    return v;")
	default:
		c.line("    return %s(m_d%s);", base, index)
	}

	c.line("}")
	c.line("")

	if !ip.Write {
		return
	}

	if r == "QVariant" || ip.IsComplex() {
		r = "const " + r + "&"
	}

	setter := "set" + common.UpperInitial(ip.Name)
	if o.Kind == config.KindList {
		c.line("bool %s::%s(int row, %s value)", o.Name, setter, r)
	} else {
		c.line("bool %s::%s(const QModelIndex& index, %s value)", o.Name, setter, r)
	}

	set := lc(o.Name) + "_set_data_" + lc(ip.Name)

	c.line("{")
	c.line("    bool set = false;")

	if ip.Optional {
		test := "value.isNull()"
		if !ip.IsComplex() {
			test += " || !value.isValid()"
		}

		c.line("    if (%s) {", test)
		c.line("        set = %s_none(m_d%s);", set, index)
		c.line("    } else {")
	}

	switch {
	case ip.Optional && !ip.IsComplex():
		c.line("    if (!value.canConvert(qMetaTypeId<%s>())) {", ip.Type.Name())
		c.line("        return false;")
		c.line("    }")
		c.line("    set = %s(m_d%s, value.value<%s>());", set, index, ip.Type.Name())
	case ip.Type == primitive.KindQString:
		c.line("    set = %s(m_d%s, value.utf16(), value.length());", set, index)
	case ip.Type == primitive.KindQByteArray:
		c.line("    set = %s(m_d%s, value.data(), value.length());", set, index)
	default:
		c.line("    set = %s(m_d%s, value);", set, index)
	}

	if ip.Optional {
		c.line("    }")
	}

	c.line("    if (set) {")

	if o.Kind == config.KindList {
		c.line("        QModelIndex index = createIndex(row, 0, row);")
	}

	c.line("        Q_EMIT dataChanged(index, index);")
	c.line("    }")
	c.line("    return set;")
	c.line("}")
	c.line("")
}

// rowArg turns the model index into the getter argument of a List.
func rowArg(o *schema.Object) string {
	if o.Kind == config.KindList {
		return ".row()"
	}

	return ""
}

func writeModelData(c *code, o *schema.Object) {
	ii := rowArg(o)

	c.line("QVariant %s::data(const QModelIndex &index, int role) const", o.Name)
	c.line("{")
	c.line("    Q_ASSERT(rowCount(index.parent()) > index.row());")
	c.line("    switch (index.column()) {")

	for col := range o.ColumnCount() {
		c.line("    case %d:", col)
		c.line("        switch (role) {")

		for _, d := range o.DataRoles(col) {
			ip := d.Property

			for _, role := range d.Roles {
				c.line("        case Qt::%s:", role)
			}

			c.line("        case Qt::UserRole + %d:", ip.Index)

			switch {
			case ip.Optional && !ip.IsComplex():
				c.line("            return %s(index%s);", ip.Name, ii)
			case ip.Optional:
				c.line("            return cleanNullQVariant(QVariant::fromValue(%s(index%s)));", ip.Name, ii)
			default:
				c.line("            return QVariant::fromValue(%s(index%s));", ip.Name, ii)
			}
		}

		c.line("        }")
		c.line("        break;")
	}

	c.line("    }")
	c.line("    return QVariant();")
	c.line("}")
}

func writeModelSetData(c *code, o *schema.Object) {
	ii := rowArg(o)

	c.line("bool %s::setData(const QModelIndex &index, const QVariant &value, int role)", o.Name)
	c.line("{")

	for col := range o.ColumnCount() {
		entries := o.SetDataRoles(col)
		if common.IsEmpty(entries) {
			continue
		}

		c.line("    if (index.column() == %d) {", col)

		for _, d := range entries {
			ip := d.Property

			conds := make([]string, 0, len(d.Roles)+1)
			for _, role := range d.Roles {
				conds = append(conds, "role == Qt::"+role)
			}

			conds = append(conds, "role == Qt::UserRole + "+strconv.Itoa(ip.Index))

			c.line("        if (%s) {", strings.Join(conds, " || "))

			setter := "set" + common.UpperInitial(ip.Name)
			if ip.Optional && !ip.IsComplex() {
				c.line("            return %s(index%s, value);", setter, ii)
			} else {
				pre := ""
				if ip.Optional {
					pre = "!value.isValid() || value.isNull() ||"
				}

				c.line("            if (%svalue.canConvert(qMetaTypeId<%s>())) {", pre, ip.Type.Name())
				c.line("                return %s(index%s, value.value<%s>());", setter, ii, ip.Type.Name())
				c.line("            }")
			}

			c.line("        }")
		}

		c.line("    }")
	}

	c.line("    return false;")
	c.line("}")
	c.line("")
}
