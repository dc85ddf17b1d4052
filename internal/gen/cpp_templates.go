package gen

import (
	"text/template"
)

// modelData feeds the fixed model blocks on both sides of the binding.
type modelData struct {
	Name        string
	Lc          string
	ColumnCount int
	LastColumn  int
}

func newModelData(name string, columnCount int) modelData {
	return modelData{
		Name:        name,
		Lc:          lc(name),
		ColumnCount: columnCount,
		LastColumn:  columnCount - 1,
	}
}

var cppOptionTemplate = template.Must(template.New("cppOption").Parse(`
    struct option_{{.}} {
    public:
        {{.}} value;
        bool some;
        operator QVariant() const {
            if (some) {
                return QVariant::fromValue(value);
            }
            return QVariant();
        }
    };
    static_assert(std::is_pod<option_{{.}}>::value, "option_{{.}} must be a POD type.");
`))

const cppQStringHelpers = `
    typedef void (*qstring_set)(QString* val, const char* utf8, int nbytes);
    void set_qstring(QString* val, const char* utf8, int nbytes) {
        *val = QString::fromUtf8(utf8, nbytes);
    }
`

const cppQByteArrayHelpers = `
    typedef void (*qbytearray_set)(QByteArray* val, const char* bytes, int nbytes);
    void set_qbytearray(QByteArray* v, const char* bytes, int nbytes) {
        if (v->isNull() && nbytes == 0) {
            *v = QByteArray(bytes, nbytes);
        } else {
            v->truncate(0);
            v->append(bytes, nbytes);
        }
    }
`

const cppModelHelpers = `
    struct qmodelindex_t {
        int row;
        quintptr id;
    };
    inline QVariant cleanNullQVariant(const QVariant& v) {
        return (v.isNull()) ?QVariant() :v;
    }
`

const cppInvokeMethod = `extern "C" {
    void qmetaobject__invokeMethod__0(QObject *obj, const char *member) {
        QMetaObject::invokeMethod(obj, member);
    }
}
`

var cppListModelTemplate = template.Must(template.New("cppListModel").Parse(`
    int {{.Lc}}_row_count(const {{.Name}}::Private*);
    bool {{.Lc}}_insert_rows({{.Name}}::Private*, int, int);
    bool {{.Lc}}_remove_rows({{.Name}}::Private*, int, int);
    bool {{.Lc}}_can_fetch_more(const {{.Name}}::Private*);
    void {{.Lc}}_fetch_more({{.Name}}::Private*);
}
int {{.Name}}::columnCount(const QModelIndex &parent) const
{
    return (parent.isValid()) ? 0 : {{.ColumnCount}};
}

bool {{.Name}}::hasChildren(const QModelIndex &parent) const
{
    return rowCount(parent) > 0;
}

int {{.Name}}::rowCount(const QModelIndex &parent) const
{
    return (parent.isValid()) ? 0 : {{.Lc}}_row_count(m_d);
}

bool {{.Name}}::insertRows(int row, int count, const QModelIndex &)
{
    return {{.Lc}}_insert_rows(m_d, row, count);
}

bool {{.Name}}::removeRows(int row, int count, const QModelIndex &)
{
    return {{.Lc}}_remove_rows(m_d, row, count);
}

QModelIndex {{.Name}}::index(int row, int column, const QModelIndex &parent) const
{
    if (!parent.isValid() && row >= 0 && row < rowCount(parent) && column >= 0 && column < {{.ColumnCount}}) {
        return createIndex(row, column, (quintptr)row);
    }
    return QModelIndex();
}

QModelIndex {{.Name}}::parent(const QModelIndex &) const
{
    return QModelIndex();
}

bool {{.Name}}::canFetchMore(const QModelIndex &parent) const
{
    return (parent.isValid()) ? 0 : {{.Lc}}_can_fetch_more(m_d);
}

void {{.Name}}::fetchMore(const QModelIndex &parent)
{
    if (!parent.isValid()) {
        {{.Lc}}_fetch_more(m_d);
    }
}
void {{.Name}}::updatePersistentIndexes() {}
`))

var cppTreeModelTemplate = template.Must(template.New("cppTreeModel").Parse(`
    int {{.Lc}}_row_count(const {{.Name}}::Private*, option_quintptr);
    bool {{.Lc}}_can_fetch_more(const {{.Name}}::Private*, option_quintptr);
    void {{.Lc}}_fetch_more({{.Name}}::Private*, option_quintptr);
    bool {{.Lc}}_insert_rows({{.Name}}::Private*, option_quintptr, int, int);
    bool {{.Lc}}_remove_rows({{.Name}}::Private*, option_quintptr, int, int);
    quintptr {{.Lc}}_index(const {{.Name}}::Private*, option_quintptr, int);
    qmodelindex_t {{.Lc}}_parent(const {{.Name}}::Private*, quintptr);
    int {{.Lc}}_row(const {{.Name}}::Private*, quintptr);
    option_quintptr {{.Lc}}_check_row(const {{.Name}}::Private*, quintptr, int);
}
int {{.Name}}::columnCount(const QModelIndex &) const
{
    return {{.ColumnCount}};
}

bool {{.Name}}::hasChildren(const QModelIndex &parent) const
{
    return rowCount(parent) > 0;
}

int {{.Name}}::rowCount(const QModelIndex &parent) const
{
    if (parent.isValid() && parent.column() != 0) {
        return 0;
    }
    const option_quintptr rust_parent = {
        parent.internalId(),
        parent.isValid()
    };
    return {{.Lc}}_row_count(m_d, rust_parent);
}

bool {{.Name}}::insertRows(int row, int count, const QModelIndex &parent)
{
    const option_quintptr rust_parent = {
        parent.internalId(),
        parent.isValid()
    };
    return {{.Lc}}_insert_rows(m_d, rust_parent, row, count);
}

bool {{.Name}}::removeRows(int row, int count, const QModelIndex &parent)
{
    const option_quintptr rust_parent = {
        parent.internalId(),
        parent.isValid()
    };
    return {{.Lc}}_remove_rows(m_d, rust_parent, row, count);
}

QModelIndex {{.Name}}::index(int row, int column, const QModelIndex &parent) const
{
    if (row < 0 || column < 0 || column >= {{.ColumnCount}}) {
        return QModelIndex();
    }
    if (parent.isValid() && parent.column() != 0) {
        return QModelIndex();
    }
    if (row >= rowCount(parent)) {
        return QModelIndex();
    }
    const option_quintptr rust_parent = {
        parent.internalId(),
        parent.isValid()
    };
    const quintptr id = {{.Lc}}_index(m_d, rust_parent, row);
    return createIndex(row, column, id);
}

QModelIndex {{.Name}}::parent(const QModelIndex &index) const
{
    if (!index.isValid()) {
        return QModelIndex();
    }
    const qmodelindex_t parent = {{.Lc}}_parent(m_d, index.internalId());
    return parent.row >= 0 ?createIndex(parent.row, 0, parent.id) :QModelIndex();
}

bool {{.Name}}::canFetchMore(const QModelIndex &parent) const
{
    if (parent.isValid() && parent.column() != 0) {
        return false;
    }
    const option_quintptr rust_parent = {
        parent.internalId(),
        parent.isValid()
    };
    return {{.Lc}}_can_fetch_more(m_d, rust_parent);
}

void {{.Name}}::fetchMore(const QModelIndex &parent)
{
    const option_quintptr rust_parent = {
        parent.internalId(),
        parent.isValid()
    };
    {{.Lc}}_fetch_more(m_d, rust_parent);
}
void {{.Name}}::updatePersistentIndexes() {
    const auto from = persistentIndexList();
    auto to = from;
    auto len = to.size();
    for (int i = 0; i < len; ++i) {
        auto index = to.at(i);
        auto row = {{.Lc}}_check_row(m_d, index.internalId(), index.row());
        if (row.some) {
            to[i] = createIndex(row.value, index.column(), index.internalId());
        } else {
            to[i] = QModelIndex();
        }
    }
    changePersistentIndexList(from, to);
}
`))

var cppModelCommonTemplate = template.Must(template.New("cppModelCommon").Parse(`
int {{.Name}}::role(const char* name) const {
    auto names = roleNames();
    auto i = names.constBegin();
    while (i != names.constEnd()) {
        if (i.value() == name) {
            return i.key();
        }
        ++i;
    }
    return -1;
}
QHash<int, QByteArray> {{.Name}}::roleNames() const {
    QHash<int, QByteArray> names = QAbstractItemModel::roleNames();
`))

var cppHeaderDataTemplate = template.Must(template.New("cppHeaderData").Parse(`    return names;
}
QVariant {{.Name}}::headerData(int section, Qt::Orientation orientation, int role) const
{
    if (orientation != Qt::Horizontal) {
        return QVariant();
    }
    return m_headerData.value(qMakePair(section, (Qt::ItemDataRole)role), role == Qt::DisplayRole ?QString::number(section + 1) :QVariant());
}

bool {{.Name}}::setHeaderData(int section, Qt::Orientation orientation, const QVariant &value, int role)
{
    if (orientation != Qt::Horizontal) {
        return false;
    }
    m_headerData.insert(qMakePair(section, (Qt::ItemDataRole)role), value);
    return true;
}

`))

var cppListCallbacksTemplate = template.Must(template.New("cppListCallbacks").Parse(`,
        [](const {{.Name}}* o) {
            Q_EMIT o->newDataReady(QModelIndex());
        },
        []({{.Name}}* o) {
            Q_EMIT o->layoutAboutToBeChanged();
        },
        []({{.Name}}* o) {
            o->updatePersistentIndexes();
            Q_EMIT o->layoutChanged();
        },
        []({{.Name}}* o, quintptr first, quintptr last) {
            o->dataChanged(o->createIndex(first, 0, first),
                       o->createIndex(last, {{.LastColumn}}, last));
        },
        []({{.Name}}* o) {
            o->beginResetModel();
        },
        []({{.Name}}* o) {
            o->endResetModel();
        },
        []({{.Name}}* o, int first, int last) {
            o->beginInsertRows(QModelIndex(), first, last);
        },
        []({{.Name}}* o) {
            o->endInsertRows();
        },
        []({{.Name}}* o, int first, int last, int destination) {
            o->beginMoveRows(QModelIndex(), first, last, QModelIndex(), destination);
        },
        []({{.Name}}* o) {
            o->endMoveRows();
        },
        []({{.Name}}* o, int first, int last) {
            o->beginRemoveRows(QModelIndex(), first, last);
        },
        []({{.Name}}* o) {
            o->endRemoveRows();
        }`))

var cppTreeCallbacksTemplate = template.Must(template.New("cppTreeCallbacks").Parse(`,
        [](const {{.Name}}* o, option_quintptr id) {
            if (id.some) {
                int row = {{.Lc}}_row(o->m_d, id.value);
                Q_EMIT o->newDataReady(o->createIndex(row, 0, id.value));
            } else {
                Q_EMIT o->newDataReady(QModelIndex());
            }
        },
        []({{.Name}}* o) {
            Q_EMIT o->layoutAboutToBeChanged();
        },
        []({{.Name}}* o) {
            o->updatePersistentIndexes();
            Q_EMIT o->layoutChanged();
        },
        []({{.Name}}* o, quintptr first, quintptr last) {
            quintptr frow = {{.Lc}}_row(o->m_d, first);
            quintptr lrow = {{.Lc}}_row(o->m_d, last);
            o->dataChanged(o->createIndex(frow, 0, first),
                       o->createIndex(lrow, {{.LastColumn}}, last));
        },
        []({{.Name}}* o) {
            o->beginResetModel();
        },
        []({{.Name}}* o) {
            o->endResetModel();
        },
        []({{.Name}}* o, option_quintptr id, int first, int last) {
            if (id.some) {
                int row = {{.Lc}}_row(o->m_d, id.value);
                o->beginInsertRows(o->createIndex(row, 0, id.value), first, last);
            } else {
                o->beginInsertRows(QModelIndex(), first, last);
            }
        },
        []({{.Name}}* o) {
            o->endInsertRows();
        },
        []({{.Name}}* o, option_quintptr sourceParent, int first, int last, option_quintptr destinationParent, int destination) {
            QModelIndex s;
            if (sourceParent.some) {
                int row = {{.Lc}}_row(o->m_d, sourceParent.value);
                s = o->createIndex(row, 0, sourceParent.value);
            }
            QModelIndex d;
            if (destinationParent.some) {
                int row = {{.Lc}}_row(o->m_d, destinationParent.value);
                d = o->createIndex(row, 0, destinationParent.value);
            }
            o->beginMoveRows(s, first, last, d, destination);
        },
        []({{.Name}}* o) {
            o->endMoveRows();
        },
        []({{.Name}}* o, option_quintptr id, int first, int last) {
            if (id.some) {
                int row = {{.Lc}}_row(o->m_d, id.value);
                o->beginRemoveRows(o->createIndex(row, 0, id.value), first, last);
            } else {
                o->beginRemoveRows(QModelIndex(), first, last);
            }
        },
        []({{.Name}}* o) {
            o->endRemoveRows();
        }`))

const cppListCallbackTypes = `,
        void (*)(const %[1]s*),
        void (*)(%[1]s*),
        void (*)(%[1]s*),
        void (*)(%[1]s*, quintptr, quintptr),
        void (*)(%[1]s*),
        void (*)(%[1]s*),
        void (*)(%[1]s*, int, int),
        void (*)(%[1]s*),
        void (*)(%[1]s*, int, int, int),
        void (*)(%[1]s*),
        void (*)(%[1]s*, int, int),
        void (*)(%[1]s*)`

const cppTreeCallbackTypes = `,
        void (*)(const %[1]s*, option_quintptr),
        void (*)(%[1]s*),
        void (*)(%[1]s*),
        void (*)(%[1]s*, quintptr, quintptr),
        void (*)(%[1]s*),
        void (*)(%[1]s*),
        void (*)(%[1]s*, option_quintptr, int, int),
        void (*)(%[1]s*),
        void (*)(%[1]s*, option_quintptr, int, int, option_quintptr, int),
        void (*)(%[1]s*),
        void (*)(%[1]s*, option_quintptr, int, int),
        void (*)(%[1]s*)`
