package gen

import (
	"strings"

	"qt-binding-generator/internal/common"
	"qt-binding-generator/internal/config"
	"qt-binding-generator/internal/schema"
)

const cppHeaderItemModel = `
    int columnCount(const QModelIndex &parent = QModelIndex()) const override;
    QVariant data(const QModelIndex &index, int role = Qt::DisplayRole) const override;
    QModelIndex index(int row, int column, const QModelIndex &parent = QModelIndex()) const override;
    QModelIndex parent(const QModelIndex &index) const override;
    bool hasChildren(const QModelIndex &parent = QModelIndex()) const override;
    int rowCount(const QModelIndex &parent = QModelIndex()) const override;
    bool canFetchMore(const QModelIndex &parent) const override;
    void fetchMore(const QModelIndex &parent) override;
    Qt::ItemFlags flags(const QModelIndex &index) const override;
    void sort(int column, Qt::SortOrder order = Qt::AscendingOrder) override;
    int role(const char* name) const;
    QHash<int, QByteArray> roleNames() const override;
    QVariant headerData(int section, Qt::Orientation orientation, int role = Qt::DisplayRole) const override;
    bool setHeaderData(int section, Qt::Orientation orientation, const QVariant &value, int role = Qt::EditRole) override;
    Q_INVOKABLE bool insertRows(int row, int count, const QModelIndex &parent = QModelIndex()) override;
    Q_INVOKABLE bool removeRows(int row, int count, const QModelIndex &parent = QModelIndex()) override;
`

const cppHeaderItemModelTail = `
Q_SIGNALS:
    // new data is ready to be made available to the model with fetchMore()
    void newDataReady(const QModelIndex &parent) const;
private:
    QHash<QPair<int,Qt::ItemDataRole>, QVariant> m_headerData;
    void initHeaderData();
    void updatePersistentIndexes();
`

// CppHeader renders the Qt header declaring one class per object.
func CppHeader(cfg *schema.Config) ([]byte, error) {
	guard := includeGuard(HeaderPath(cfg))

	c := &code{}
	c.line(Banner)
	c.line("#ifndef %s", guard)
	c.line("#define %s", guard)
	c.line("")
	c.line("#include <QtCore/QObject>")
	c.line("#include <QtCore/QAbstractItemModel>")
	c.line("")

	for _, o := range cfg.Objects {
		c.line("class %s;", o.Name)
	}

	for _, o := range cfg.Objects {
		writeHeaderObject(c, cfg, o)
	}

	c.line("#endif // %s", guard)

	return c.bytes()
}

func writeHeaderObject(c *code, cfg *schema.Config, o *schema.Object) {
	c.line("")
	c.line("class %s : public %s", o.Name, baseClass(o))
	c.line("{")
	c.line("    Q_OBJECT")

	// objects owning nested objects set their private pointers
	for _, other := range cfg.Objects {
		if other.ContainsObject() && other.Name != o.Name {
			c.line("    friend class %s;", other.Name)
		}
	}

	c.line("public:")
	c.line("    class Private;")
	c.line("private:")

	for _, p := range o.Properties {
		if p.Type.IsObject() {
			c.line("    %s* const m_%s;", p.Type.Name(), p.Name)
		}
	}

	c.line("    Private * m_d;")
	c.line("    bool m_ownsPrivate;")

	for _, p := range o.Properties {
		t := cppPropertyType(p)
		if p.Type.IsObject() {
			t += "*"
		}

		write := ""
		if p.Write {
			write = "WRITE set" + common.UpperInitial(p.Name) + " "
		}

		c.line("    Q_PROPERTY(%s %s READ %s %sNOTIFY %sChanged FINAL)", t, p.Name, p.Name, write, p.Name)
	}

	c.line("    explicit %s(bool owned, QObject *parent);", o.Name)
	c.line("public:")
	c.line("    explicit %s(QObject *parent = nullptr);", o.Name)
	c.line("    ~%s();", o.Name)

	for _, p := range o.Properties {
		if p.Type.IsObject() {
			c.line("    const %s* %s() const;", p.Type.Name(), p.Name)
			c.line("    %s* %s();", p.Type.Name(), p.Name)

			continue
		}

		t, setT := p.Type.Name(), p.Type.CppSetType()
		if p.Optional && !p.Type.IsComplex() {
			t, setT = "QVariant", "const QVariant&"
		}

		c.line("    %s %s() const;", t, p.Name)

		if p.Write {
			c.line("    void set%s(%s v);", common.UpperInitial(p.Name), setT)
		}
	}

	for _, f := range o.Functions {
		args := make([]string, 0, len(f.Arguments))
		for _, a := range f.Arguments {
			args = append(args, a.Type.CppSetType()+" "+a.Name)
		}

		constness := " const"
		if f.Mut {
			constness = ""
		}

		c.line("    Q_INVOKABLE %s %s(%s)%s;", f.Return.Name(), f.Name, strings.Join(args, ", "), constness)
	}

	if o.IsModel() {
		writeHeaderItemModel(c, o)
	}

	c.line("Q_SIGNALS:")

	for _, p := range o.Properties {
		c.line("    void %sChanged();", p.Name)
	}

	c.line("};")
}

func writeHeaderItemModel(c *code, o *schema.Object) {
	c.text(cppHeaderItemModel)

	if o.ModelIsWritable() {
		c.line("    bool setData(const QModelIndex &index, const QVariant &value, int role = Qt::EditRole) override;")
	}

	for _, ip := range o.ItemProperties {
		r := cppItemType(ip)

		rw := r
		if r == "QVariant" || ip.IsComplex() {
			rw = "const " + r + "&"
		}

		if o.Kind == config.KindList {
			c.line("    Q_INVOKABLE %s %s(int row) const;", r, ip.Name)

			if ip.Write {
				c.line("    Q_INVOKABLE bool set%s(int row, %s value);", common.UpperInitial(ip.Name), rw)
			}

			continue
		}

		c.line("    Q_INVOKABLE %s %s(const QModelIndex& index) const;", r, ip.Name)

		if ip.Write {
			c.line("    Q_INVOKABLE bool set%s(const QModelIndex& index, %s value);", common.UpperInitial(ip.Name), rw)
		}
	}

	c.text(cppHeaderItemModelTail)
}
